package compose

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/verolabs/docforge/internal/block"
	"github.com/verolabs/docforge/internal/record"
)

// allTexts flattens the text content of every block, one entry per block.
func allTexts(blocks []block.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Text()
	}
	return out
}

func containsText(blocks []block.Block, want string) bool {
	for _, b := range blocks {
		if b.Text() == want {
			return true
		}
	}
	return false
}

func findHeading(blocks []block.Block, text string) *block.Heading {
	for _, b := range blocks {
		if b.Kind == block.KindHeading && b.Heading.Text == text {
			return b.Heading
		}
	}
	return nil
}

func TestEmptyRecordsBuild(t *testing.T) {
	// Every builder must succeed on an all-defaults record and emit the
	// top-level header block.
	cases := []struct {
		name   string
		blocks []block.Block
		header string
	}{
		{"resume", Resume(record.Resume{}), "Your Name"},
		{"cover_letter", CoverLetter(record.CoverLetter{}), "Your Name"},
		{"proposal", Proposal(record.Proposal{}), "Business Proposal"},
		{"invoice", Invoice(record.Invoice{}), "INVOICE"},
		{"contract", Contract(record.Contract{}), "SERVICE AGREEMENT"},
		{"portfolio", Portfolio(record.Portfolio{}), "Your Name"},
	}
	for _, tc := range cases {
		if len(tc.blocks) == 0 {
			t.Errorf("%s: empty block sequence", tc.name)
			continue
		}
		if !containsText(tc.blocks, tc.header) {
			t.Errorf("%s: header %q missing from %v", tc.name, tc.header, allTexts(tc.blocks))
		}
	}
}

func TestResumeCategorizedSkillsOrder(t *testing.T) {
	var skills record.Skills
	if err := json.Unmarshal([]byte(`{"Languages":["Python","Go"],"Tools":["Git"]}`), &skills); err != nil {
		t.Fatalf("unmarshal skills: %v", err)
	}
	blocks := Resume(record.Resume{Skills: skills})

	var lines []string
	for _, b := range blocks {
		text := b.Text()
		if strings.HasPrefix(text, "Languages: ") || strings.HasPrefix(text, "Tools: ") {
			lines = append(lines, text)
		}
	}
	want := []string{"Languages: Python, Go", "Tools: Git"}
	if len(lines) != len(want) {
		t.Fatalf("skill lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("skill line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestResumeExperienceLayout(t *testing.T) {
	blocks := Resume(record.Resume{
		Experience: []record.Experience{{
			Title:            "Senior Developer",
			Company:          "Tech Corp",
			Location:         "Austin, TX",
			StartDate:        "Jan 2020",
			EndDate:          "Present",
			Responsibilities: []string{"Led the platform team"},
		}},
	})
	if findHeading(blocks, "WORK EXPERIENCE") == nil {
		t.Fatal("WORK EXPERIENCE heading missing")
	}
	if !containsText(blocks, "Tech Corp | Jan 2020 - Present | Austin, TX") {
		t.Errorf("company line missing from %v", allTexts(blocks))
	}
	found := false
	for _, b := range blocks {
		if b.Kind == block.KindBulletItem && b.BulletItem.Text == "Led the platform team" {
			found = true
		}
	}
	if !found {
		t.Error("responsibility bullet missing")
	}
}

func TestInvoiceTables(t *testing.T) {
	amt := 40.0
	blocks := Invoice(record.Invoice{
		Items: []record.LineItem{
			{Description: "A", Quantity: 2, Rate: 100},
			{Description: "B", Quantity: 1, Rate: 50, Amount: &amt},
		},
		TaxRate:  10,
		Discount: 5,
	})

	var tables []*block.Table
	for _, b := range blocks {
		if b.Kind == block.KindTable {
			tables = append(tables, b.Table)
		}
	}
	if len(tables) != 3 {
		t.Fatalf("got %d tables, want info + items + totals", len(tables))
	}

	items := tables[1]
	if !items.HeaderRow || !items.Rows[0][0].Bold {
		t.Error("items table header row not bold")
	}
	if got := items.Rows[1][3].Text; got != "$200.00" {
		t.Errorf("item A amount = %q, want $200.00", got)
	}
	if got := items.Rows[2][3].Text; got != "$40.00" {
		t.Errorf("item B amount = %q, explicit amount should win", got)
	}

	totals := tables[2]
	if totals.Align != block.AlignRight {
		t.Error("totals table should be right aligned")
	}
	if got := totals.Rows[0][1].Text; got != "$240.00" {
		t.Errorf("subtotal = %q, want $240.00", got)
	}
	if got := totals.Rows[1][0].Text; got != "Tax (10%):" {
		t.Errorf("tax label = %q", got)
	}
	if got := totals.Rows[2][1].Text; got != "-$5.00" {
		t.Errorf("discount = %q, want -$5.00", got)
	}
	totalRow := totals.Rows[3]
	if totalRow[1].Text != "$259.00" {
		t.Errorf("total = %q, want $259.00", totalRow[1].Text)
	}
	if !totalRow[0].Bold || totalRow[0].Size != 14 {
		t.Errorf("TOTAL row should be bold 14pt, got %+v", totalRow[0])
	}
}

func TestContractBoilerplate(t *testing.T) {
	blocks := Contract(record.Contract{
		ContractType: "Freelance Agreement",
		Party1:       record.Party{Name: "Alex Provider"},
		Party2:       record.Party{Name: "Client Co"},
		Terms:        "Scope:\nBuild a site.\n\nBudget\nFlexible.",
	})

	if !containsText(blocks, "FREELANCE AGREEMENT") {
		t.Error("upper-cased title missing")
	}
	if findHeading(blocks, "Scope") == nil || findHeading(blocks, "Budget") == nil {
		t.Errorf("segmented term headings missing from %v", allTexts(blocks))
	}
	if !containsText(blocks, legalDisclaimer) {
		t.Error("legal disclaimer missing")
	}
	if !containsText(blocks, `Party 1 ("Provider"): Alex Provider`) {
		t.Errorf("party narrative missing from %v", allTexts(blocks))
	}

	sigLines := 0
	for _, b := range blocks {
		if b.Text() == signatureLine {
			sigLines++
		}
	}
	if sigLines != 4 {
		t.Errorf("got %d signature lines, want 4 (two per party)", sigLines)
	}
	if len(signatureLine) != 50 {
		t.Errorf("signature line is %d underscores, want 50", len(signatureLine))
	}
}

func TestCoverLetterSalutation(t *testing.T) {
	blocks := CoverLetter(record.CoverLetter{
		HiringManager: "Jane Smith",
		Content:       "First paragraph.\n\nSecond paragraph.",
	})
	if !containsText(blocks, "Dear Jane Smith,") {
		t.Error("named salutation missing")
	}
	if !containsText(blocks, "First paragraph.") || !containsText(blocks, "Second paragraph.") {
		t.Error("body paragraphs missing")
	}

	blocks = CoverLetter(record.CoverLetter{Content: "Hello."})
	if !containsText(blocks, "Dear Hiring Manager,") {
		t.Error("default salutation missing")
	}
}

func TestProposalManualSections(t *testing.T) {
	blocks := Proposal(record.Proposal{
		Scope:        "Build everything",
		Deliverables: []string{"Website", "Admin Panel"},
		Budget:       "$50,000",
	})
	if findHeading(blocks, "Scope of Work") == nil {
		t.Error("Scope of Work heading missing")
	}
	if findHeading(blocks, "Investment") == nil {
		t.Error("Investment heading missing when budget set")
	}
	if findHeading(blocks, "Next Steps") == nil {
		t.Fatal("Next Steps heading missing")
	}

	var steps []string
	for _, b := range blocks {
		if b.Kind == block.KindNumberedItem {
			steps = append(steps, b.NumberedItem.Text)
		}
	}
	if len(steps) != 3 || steps[0] != "Review this proposal" {
		t.Errorf("default next steps = %v", steps)
	}
}

func TestProposalContentSegmented(t *testing.T) {
	blocks := Proposal(record.Proposal{
		Content: "Executive Summary\nWe deliver.\n\nTimeline\nThree months.",
	})
	if findHeading(blocks, "Executive Summary") == nil || findHeading(blocks, "Timeline") == nil {
		t.Errorf("segmented headings missing from %v", allTexts(blocks))
	}
	// Content path must not append the manual Next Steps section.
	if findHeading(blocks, "Next Steps") != nil {
		t.Error("Next Steps should not appear on the content path")
	}
}

func TestPortfolioFooterDate(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	blocks := Portfolio(record.Portfolio{Name: "John Doe"})
	if !containsText(blocks, "Generated on March 5, 2024") {
		t.Errorf("footer missing from %v", allTexts(blocks))
	}

	rules := 0
	for _, b := range blocks {
		if b.Kind == block.KindRule {
			rules++
		}
	}
	if rules != 2 {
		t.Errorf("got %d rules, want header and footer dividers", rules)
	}
}

func TestPortfolioWebsiteLink(t *testing.T) {
	blocks := Portfolio(record.Portfolio{
		Name:    "John Doe",
		Contact: record.Contact{Website: "https://johndoe.com"},
	})
	found := false
	for _, b := range blocks {
		if b.Kind != block.KindParagraph {
			continue
		}
		for _, r := range b.Paragraph.Runs {
			if r.Link == "https://johndoe.com" {
				found = true
			}
		}
	}
	if !found {
		t.Error("website run should carry a link target")
	}
}
