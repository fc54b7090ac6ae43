package record

import "time"

// timeNow is swapped in tests that assert date defaulting.
var timeNow = time.Now

// longDate is the "Month DD, YYYY" form used by letters, proposals and
// contracts.
func longDate() string {
	return timeNow().Format("January 2, 2006")
}

// isoDate is the form used on invoices.
func isoDate() string {
	return timeNow().Format("2006-01-02")
}

// ResolveProject folds the name|title and technologies|tech aliases,
// first-present wins.
func ResolveProject(p Project) Project {
	if p.Name == "" {
		p.Name = p.Title
	}
	if p.Name == "" {
		p.Name = "Project"
	}
	if len(p.Technologies) == 0 {
		p.Technologies = p.Tech
	}
	if p.Role == "" {
		p.Role = "Developer"
	}
	return p
}

func resolveProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = ResolveProject(p)
	}
	return out
}

// ResolveResume returns the canonical view of a resume record.
func ResolveResume(r Resume) Resume {
	if r.PersonalInfo.Name == "" {
		r.PersonalInfo.Name = "Your Name"
	}
	for i, exp := range r.Experience {
		if exp.Title == "" {
			exp.Title = "Position"
		}
		if exp.Company == "" {
			exp.Company = "Company"
		}
		if exp.StartDate == "" {
			exp.StartDate = "Start"
		}
		if exp.EndDate == "" {
			exp.EndDate = "End"
		}
		r.Experience[i] = exp
	}
	for i, edu := range r.Education {
		if edu.Degree == "" {
			edu.Degree = "Degree"
		}
		if edu.Field == "" {
			edu.Field = "Field"
		}
		if edu.School == "" {
			edu.School = "School"
		}
		if edu.GraduationDate == "" {
			edu.GraduationDate = "Graduation Date"
		}
		r.Education[i] = edu
	}
	for i, cert := range r.Certifications {
		if cert.Name == "" {
			cert.Name = "Certification"
		}
		if cert.Issuer == "" {
			cert.Issuer = "Issuer"
		}
		r.Certifications[i] = cert
	}
	r.Projects = resolveProjects(r.Projects)
	return r
}

// ResolveCoverLetter returns the canonical view of a cover letter record.
func ResolveCoverLetter(c CoverLetter) CoverLetter {
	if c.Name == "" {
		c.Name = "Your Name"
	}
	if c.Company == "" {
		c.Company = "Company Name"
	}
	if c.Date == "" {
		c.Date = longDate()
	}
	if c.Content == "" && c.CustomContent != "" {
		c.Content = c.CustomContent
	}
	return c
}

// ResolveProposal returns the canonical view of a proposal record.
func ResolveProposal(p Proposal) Proposal {
	if p.Title == "" {
		p.Title = "Business Proposal"
	}
	if p.ClientName == "" {
		p.ClientName = "Client Name"
	}
	if p.PreparedBy == "" {
		p.PreparedBy = "Your Company"
	}
	if p.Date == "" {
		p.Date = longDate()
	}
	if p.Content == "" && p.CustomContent != "" {
		p.Content = p.CustomContent
	}
	return p
}

// ResolveInvoice returns the canonical view of an invoice record. Numeric
// fields decode missing as zero already; line item amounts stay nil here so
// the arithmetic can distinguish explicit amounts from computed ones.
func ResolveInvoice(inv Invoice) Invoice {
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = "INV-001"
	}
	if inv.InvoiceDate == "" {
		inv.InvoiceDate = isoDate()
	}
	if inv.DueDate == "" {
		inv.DueDate = "Upon Receipt"
	}
	if inv.FromInfo.Name == "" {
		inv.FromInfo.Name = "Your Business"
	}
	if inv.ToInfo.Name == "" {
		inv.ToInfo.Name = "Client Name"
	}
	return inv
}

// ResolveContract returns the canonical view of a contract record.
func ResolveContract(c Contract) Contract {
	if c.ContractType == "" {
		c.ContractType = "Service Agreement"
	}
	if c.Date == "" {
		c.Date = longDate()
	}
	if c.Party1.Name == "" {
		c.Party1.Name = "Party 1 Name"
	}
	if c.Party2.Name == "" {
		c.Party2.Name = "Party 2 Name"
	}
	if c.Terms == "" && c.CustomContent != "" {
		c.Terms = c.CustomContent
	}
	return c
}

// ResolvePortfolio returns the canonical view of a portfolio record.
func ResolvePortfolio(p Portfolio) Portfolio {
	if p.Name == "" {
		p.Name = "Your Name"
	}
	if p.Title == "" {
		p.Title = "Professional Title"
	}
	p.Projects = resolveProjects(p.Projects)
	return p
}
