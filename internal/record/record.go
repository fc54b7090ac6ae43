// Package record defines the canonical input records for each document kind
// and the resolver that normalizes raw JSON input into them: alias
// resolution, defaulting, and numeric coercion. The resolver is total over
// optional fields; only kind-specific required fields can fail validation,
// and that check lives in the engine.
package record

// PersonalInfo is the resume header contact data.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is one work history entry.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Responsibilities []string `json:"responsibilities"`
}

// Education is one education entry.
type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	School         string `json:"school"`
	GraduationDate string `json:"graduation_date"`
	GPA            string `json:"gpa"`
	Honors         string `json:"honors"`
}

// Certification is one certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Project is one project entry. Callers send either name or title, and
// either technologies or tech; Resolve folds the aliases into Name and
// Technologies.
type Project struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Tech         []string `json:"tech"`
	URL          string   `json:"url"`
	Role         string   `json:"role"`
}

// Resume is the canonical resume record.
type Resume struct {
	PersonalInfo    PersonalInfo    `json:"personal_info"`
	Summary         string          `json:"summary"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	Skills          Skills          `json:"skills"`
	Certifications  []Certification `json:"certifications"`
	Projects        []Project       `json:"projects"`
	YearsExperience int             `json:"years_experience"`
	EnhanceWithAI   bool            `json:"enhance_with_ai"`
}

// CoverLetter is the canonical cover letter record. Content is the letter
// body; when empty the engine may fill it from the enhancement capability
// or from CustomContent.
type CoverLetter struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Date          string   `json:"date"`
	Company       string   `json:"company"`
	HiringManager string   `json:"hiring_manager"`
	Position      string   `json:"position"`
	Skills        []string `json:"skills"`
	Experience    string   `json:"experience"`
	Tone          string   `json:"tone"`
	Content       string   `json:"content"`
	CustomContent string   `json:"custom_content"`
	GenerateAI    *bool    `json:"generate_with_ai"`
}

// Proposal is the canonical proposal record. When Content is set the
// builder segments it; otherwise the manual structured sections are used.
type Proposal struct {
	Title            string   `json:"title"`
	ClientName       string   `json:"client_name"`
	PreparedBy       string   `json:"prepared_by"`
	Date             string   `json:"date"`
	ProjectTitle     string   `json:"project_title"`
	ExecutiveSummary string   `json:"executive_summary"`
	ProjectOverview  string   `json:"project_overview"`
	Scope            string   `json:"scope"`
	Deliverables     []string `json:"deliverables"`
	Timeline         string   `json:"timeline"`
	Budget           string   `json:"budget"`
	NextSteps        []string `json:"next_steps"`
	Content          string   `json:"content"`
	CustomContent    string   `json:"custom_content"`
	GenerateAI       *bool    `json:"generate_with_ai"`
}

// Party identifies one side of an invoice or contract.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// LineItem is one invoice row. Amount overrides Quantity*Rate when set.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	Rate        float64  `json:"rate"`
	Amount      *float64 `json:"amount"`
}

// Invoice is the canonical invoice record. Items is the only required
// field in the whole catalog.
type Invoice struct {
	InvoiceNumber       string     `json:"invoice_number"`
	InvoiceDate         string     `json:"invoice_date"`
	DueDate             string     `json:"due_date"`
	FromInfo            Party      `json:"from_info"`
	ToInfo              Party      `json:"to_info"`
	Items               []LineItem `json:"items"`
	TaxRate             float64    `json:"tax_rate"`
	Discount            float64    `json:"discount"`
	Notes               string     `json:"notes"`
	PaymentInstructions string     `json:"payment_instructions"`
}

// Contract is the canonical contract record.
type Contract struct {
	ContractType   string `json:"contract_type"`
	Date           string `json:"date"`
	Party1         Party  `json:"party1"`
	Party2         Party  `json:"party2"`
	EffectiveDate  string `json:"effective_date"`
	ExpirationDate string `json:"expiration_date"`
	Terms          string `json:"terms"`
	CustomTerms    string `json:"custom_terms"`
	CustomContent  string `json:"custom_content"`
	GenerateAI     *bool  `json:"generate_with_ai"`
}

// Contact is the portfolio contact line.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
}

// Portfolio is the canonical portfolio record (PDF only).
type Portfolio struct {
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Bio            string          `json:"bio"`
	Contact        Contact         `json:"contact"`
	Skills         Skills          `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	EnhanceWithAI  bool            `json:"enhance_with_ai"`
}
