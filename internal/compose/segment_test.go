package compose

import "testing"

func TestSplitSectionsContractColonHeading(t *testing.T) {
	input := "Scope:\nBuild a site.\n\nBudget\nFlexible."
	segs := SplitSections(input, ContractSegments)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}

	if segs[0].Heading != "Scope" {
		t.Errorf("first heading = %q, want Scope with colon stripped", segs[0].Heading)
	}
	if len(segs[0].Body) != 1 || segs[0].Body[0] != "Build a site." {
		t.Errorf("first body = %v", segs[0].Body)
	}

	if segs[1].Heading != "Budget" {
		t.Errorf("second heading = %q, want Budget", segs[1].Heading)
	}
	if len(segs[1].Body) != 1 || segs[1].Body[0] != "Flexible." {
		t.Errorf("second body = %v", segs[1].Body)
	}
}

func TestSplitSectionsProposalThreshold(t *testing.T) {
	short := "Executive Summary\nWe will deliver."
	segs := SplitSections(short, ProposalSegments)
	if len(segs) != 1 || segs[0].Heading != "Executive Summary" {
		t.Fatalf("short line should classify as heading: %+v", segs)
	}

	long := "This opening line is deliberately far longer than the fifty character bound\nBody."
	segs = SplitSections(long, ProposalSegments)
	if segs[0].Heading != "" {
		t.Errorf("long first line misclassified as heading %q", segs[0].Heading)
	}
	if len(segs[0].Body) != 2 {
		t.Errorf("body = %v, long first line should stay in the body", segs[0].Body)
	}
}

func TestSplitSectionsPeriodNotHeading(t *testing.T) {
	segs := SplitSections("We deliver value.\nMore text.", ProposalSegments)
	if segs[0].Heading != "" {
		t.Errorf("line ending in period classified as heading %q", segs[0].Heading)
	}
}

func TestSplitSectionsSkipsEmptyChunks(t *testing.T) {
	segs := SplitSections("First\n\n\n\nSecond", ProposalSegments)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
}
