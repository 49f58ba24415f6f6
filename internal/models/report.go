package models

// Header carries the display-only metadata supplied by the caller. None of
// it participates in any calculation.
type Header struct {
	ProcessoNr string
	Credor     string
	Vigencia   string
	Periodo    string
}

// ReportLine is one formatted commitment row consumed by the renderer.
// Amounts are fixed two-decimal strings so re-running the pipeline on the
// same snapshot yields byte-identical output.
type ReportLine struct {
	Empenho    string
	ValorBruto string
	Deducao    string
	Liquido    string
}

// ReportDeduction is one formatted withholding row consumed by the renderer.
type ReportDeduction struct {
	Empenho     string
	Documento   string
	Contraparte string
	Base        string
	Valor       string
}

// Report is the fully assembled checklist: everything the rendering step
// needs and nothing it has to compute.
type Report struct {
	Header Header

	Lines      []ReportLine
	GrandTotal ReportLine

	Federal           []ReportDeduction
	FederalSubtotal   string
	Municipal         []ReportDeduction
	MunicipalSubtotal string

	TicketCount int
}
