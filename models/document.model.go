package models

import "time"

// TextAlign is the front-page body alignment. Exactly one value is active.
type TextAlign string

const (
	AlignLeft    TextAlign = "left"
	AlignCenter  TextAlign = "center"
	AlignRight   TextAlign = "right"
	AlignJustify TextAlign = "justify"
)

// Valid reports whether a is one of the four accepted alignments.
func (a TextAlign) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}

// DefaultBaseText is the body template a fresh session starts with.
const DefaultBaseText = "Certificamos que {{NOME}}, portador do CPF {{CPF}}, concluiu com êxito o curso de {{CURSO}}, realizado em {{DATA}}, com carga horária total de {{CARGA_HORARIA}} horas, sob a responsabilidade técnica de {{RAZAO_SOCIAL}}, inscrita no CNPJ {{CNPJ}}, com sede em {{ENDERECO}}."

// CertificateDocument is the root aggregate for one editing session: every
// field the form UI and the layout sliders can touch. Image fields hold
// self-contained inline payloads (data URIs) or are empty.
//
// JSON tags keep the original stored-payload shape so records written by
// earlier deployments hydrate unchanged.
type CertificateDocument struct {
	Students    []Student        `json:"students"`
	Instructors []Instructor     `json:"instructors"`
	Curriculum  []CurriculumItem `json:"curriculum"`

	CompanyName  string `json:"companyName"`
	CompanyCNPJ  string `json:"companyCnpj"`
	Address      string `json:"address"`
	ProviderName string `json:"providerName"`
	ProviderCNPJ string `json:"providerCnpj"`

	TechResponsibleName         string `json:"techResponsibleName"`
	TechResponsibleCompetencies string `json:"techResponsibleCompetencies"`
	ShowTechResponsible         bool   `json:"showTechResponsible"`

	CourseName string `json:"courseName"`
	CourseDate string `json:"courseDate"`

	// TotalHours is stored, not computed on read: curriculum mutations
	// overwrite it with the item sum, but a manual edit in between is kept
	// verbatim, including non-numeric text.
	TotalHours string `json:"totalHours"`

	BaseText string `json:"baseText"`

	BgImage        string `json:"bgImage,omitempty"`
	SignatureImage string `json:"signatureImage,omitempty"`
	DigitalSeal    string `json:"digitalSeal,omitempty"`

	ShowHoursColumn bool      `json:"showHoursColumn"`
	FrontTextAlign  TextAlign `json:"frontTextAlign"`

	// BoldVariables is a duplicate-free set of template tokens whose resolved
	// values render emphasized.
	BoldVariables []string `json:"boldVariables"`

	BackSplitRatio                int `json:"versoSplitRatio"`
	HoursColumnWidth              int `json:"hoursColumnWidth"`
	BackRowPadding                int `json:"versoRowPadding"`
	BackCurriculumFontSize        int `json:"versoCurriculumFontSize"`
	BackHeaderFontSize            int `json:"versoHeaderFontSize"`
	FooterFontSize                int `json:"footerFontSize"`
	BackInstitutionVerticalOffset int `json:"versoInstitutionVerticalOffset"`
	BackCurriculumVerticalOffset  int `json:"versoCurriculumVerticalOffset"`
	MainTextVerticalOffset        int `json:"mainTextVerticalOffset"`
	TitleVerticalOffset           int `json:"titleVerticalOffset"`
	TitleFontSize                 int `json:"titleFontSize"`
	SubtitleFontSize              int `json:"subtitleFontSize"`
	TitleSpacing                  int `json:"titleSpacing"`
	BodyVerticalOffset            int `json:"bodyVerticalOffset"`
	HighlightNameVerticalOffset   int `json:"highlightNameVerticalOffset"`
	HighlightNameFontSize         int `json:"highlightNameFontSize"`
	FrontSidePadding              int `json:"frontSidePadding"`
	SignaturesVerticalOffset      int `json:"signaturesVerticalOffset"`
	SignaturesHorizontalPadding   int `json:"signaturesHorizontalPadding"`
	SignatureFontSize             int `json:"signatureFontSize"`
	FrontHeaderPadding            int `json:"frontHeaderPadding"`
	FrontFooterPadding            int `json:"frontFooterPadding"`
	BackHeaderPadding             int `json:"versoHeaderPadding"`
	BackFooterPadding             int `json:"versoFooterPadding"`
	FrontBorderWidth              int `json:"frontBorderWidth"`
}

// DefaultDocument returns a fresh aggregate with every layout parameter at its
// fixed default.
func DefaultDocument() CertificateDocument {
	return CertificateDocument{
		Students:    []Student{},
		Instructors: []Instructor{},
		Curriculum:  []CurriculumItem{},

		ShowTechResponsible: true,

		CourseDate: time.Now().Format("02/01/2006"),
		TotalHours: "0",
		BaseText:   DefaultBaseText,

		ShowHoursColumn: true,
		FrontTextAlign:  AlignJustify,

		BoldVariables: []string{"{{NOME}}", "{{CPF}}", "{{CURSO}}", "{{RAZAO_SOCIAL}}"},

		BackSplitRatio:              40,
		HoursColumnWidth:            80,
		BackRowPadding:              12,
		BackCurriculumFontSize:      12,
		BackHeaderFontSize:          16,
		FooterFontSize:              9,
		TitleFontSize:               100,
		SubtitleFontSize:            24,
		TitleSpacing:                24,
		HighlightNameFontSize:       80,
		FrontSidePadding:            128,
		SignaturesHorizontalPadding: 40,
		SignatureFontSize:           14,
		FrontHeaderPadding:          60,
		FrontFooterPadding:          24,
		BackHeaderPadding:           48,
		BackFooterPadding:           32,
		FrontBorderWidth:            16,
	}
}
