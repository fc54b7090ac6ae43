package compose

import (
	"strings"

	"github.com/verolabs/docforge/internal/block"
)

// Segment is one blank-line-delimited chunk of freeform text, split into an
// optional heading and its body lines.
type Segment struct {
	Heading string
	Body    []string
}

// SegmentOptions tune the heading heuristic. HeadingMax is the exclusive
// length bound for a heading candidate; ColonHeading makes a trailing colon
// force heading classification (and strips colons from the heading text).
type SegmentOptions struct {
	HeadingMax   int
	ColonHeading bool
}

// ProposalSegments is the heuristic used for proposal content.
var ProposalSegments = SegmentOptions{HeadingMax: 50}

// ContractSegments is the heuristic used for contract terms.
var ContractSegments = SegmentOptions{HeadingMax: 60, ColonHeading: true}

// SplitSections splits text on blank-line boundaries and classifies the
// first line of each segment as a heading when it is short and does not end
// in a period. This is a deliberate approximation: misclassified lines are
// accepted behavior.
func SplitSections(text string, opts SegmentOptions) []Segment {
	var segs []Segment
	for _, chunk := range strings.Split(text, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		lines := strings.Split(chunk, "\n")
		first := strings.TrimSpace(lines[0])

		heading := false
		if len(first) < opts.HeadingMax {
			if opts.ColonHeading {
				heading = strings.HasSuffix(first, ":") || !strings.HasSuffix(first, ".")
			} else {
				heading = !strings.HasSuffix(first, ".")
			}
		}

		var seg Segment
		rest := lines
		if heading {
			title := first
			if opts.ColonHeading {
				title = strings.TrimSpace(strings.ReplaceAll(title, ":", ""))
			}
			seg.Heading = title
			rest = lines[1:]
		}
		for _, line := range rest {
			if line = strings.TrimSpace(line); line != "" {
				seg.Body = append(seg.Body, line)
			}
		}
		segs = append(segs, seg)
	}
	return segs
}

// appendSegments emits each segment as a heading (at the given level, when
// present) followed by one paragraph per body line and a trailing spacer.
func appendSegments(blocks []block.Block, text string, opts SegmentOptions, level int) []block.Block {
	for _, seg := range SplitSections(text, opts) {
		if seg.Heading != "" {
			blocks = append(blocks, block.NewHeading(seg.Heading, level))
		}
		for _, line := range seg.Body {
			blocks = append(blocks, block.NewText(line))
		}
		blocks = append(blocks, block.NewSpacer(spacerHeight))
	}
	return blocks
}
