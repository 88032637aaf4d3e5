package document

import "certmaster/models"

// Action is the closed set of document update operations. Every edit the UI
// can make is one of these variants, so Reduce can be exhaustive and replayed
// deterministically in tests.
type Action interface {
	isAction()
}

// TextField enumerates the free-text fields of the aggregate.
type TextField string

const (
	FieldCompanyName                 TextField = "companyName"
	FieldCompanyCNPJ                 TextField = "companyCnpj"
	FieldAddress                     TextField = "address"
	FieldProviderName                TextField = "providerName"
	FieldProviderCNPJ                TextField = "providerCnpj"
	FieldTechResponsibleName         TextField = "techResponsibleName"
	FieldTechResponsibleCompetencies TextField = "techResponsibleCompetencies"
	FieldCourseName                  TextField = "courseName"
	FieldCourseDate                  TextField = "courseDate"
	FieldBaseText                    TextField = "baseText"
)

// Valid reports whether f names an editable text field.
func (f TextField) Valid() bool {
	switch f {
	case FieldCompanyName, FieldCompanyCNPJ, FieldAddress, FieldProviderName,
		FieldProviderCNPJ, FieldTechResponsibleName, FieldTechResponsibleCompetencies,
		FieldCourseName, FieldCourseDate, FieldBaseText:
		return true
	}
	return false
}

// LayoutParam enumerates the numeric layout sliders.
type LayoutParam string

const (
	ParamBackSplitRatio                LayoutParam = "versoSplitRatio"
	ParamHoursColumnWidth              LayoutParam = "hoursColumnWidth"
	ParamBackRowPadding                LayoutParam = "versoRowPadding"
	ParamBackCurriculumFontSize        LayoutParam = "versoCurriculumFontSize"
	ParamBackHeaderFontSize            LayoutParam = "versoHeaderFontSize"
	ParamFooterFontSize                LayoutParam = "footerFontSize"
	ParamBackInstitutionVerticalOffset LayoutParam = "versoInstitutionVerticalOffset"
	ParamBackCurriculumVerticalOffset  LayoutParam = "versoCurriculumVerticalOffset"
	ParamMainTextVerticalOffset        LayoutParam = "mainTextVerticalOffset"
	ParamTitleVerticalOffset           LayoutParam = "titleVerticalOffset"
	ParamTitleFontSize                 LayoutParam = "titleFontSize"
	ParamSubtitleFontSize              LayoutParam = "subtitleFontSize"
	ParamTitleSpacing                  LayoutParam = "titleSpacing"
	ParamBodyVerticalOffset            LayoutParam = "bodyVerticalOffset"
	ParamHighlightNameVerticalOffset   LayoutParam = "highlightNameVerticalOffset"
	ParamHighlightNameFontSize         LayoutParam = "highlightNameFontSize"
	ParamFrontSidePadding              LayoutParam = "frontSidePadding"
	ParamSignaturesVerticalOffset      LayoutParam = "signaturesVerticalOffset"
	ParamSignaturesHorizontalPadding   LayoutParam = "signaturesHorizontalPadding"
	ParamSignatureFontSize             LayoutParam = "signatureFontSize"
	ParamFrontHeaderPadding            LayoutParam = "frontHeaderPadding"
	ParamFrontFooterPadding            LayoutParam = "frontFooterPadding"
	ParamBackHeaderPadding             LayoutParam = "versoHeaderPadding"
	ParamBackFooterPadding             LayoutParam = "versoFooterPadding"
	ParamFrontBorderWidth              LayoutParam = "frontBorderWidth"
)

// Valid reports whether p names a layout slider.
func (p LayoutParam) Valid() bool {
	_, ok := layoutSetters[p]
	return ok
}

// ImageSlot enumerates the three optional image assets.
type ImageSlot string

const (
	SlotBackground ImageSlot = "bgImage"
	SlotSignature  ImageSlot = "signatureImage"
	SlotSeal       ImageSlot = "digitalSeal"
)

func (s ImageSlot) Valid() bool {
	switch s {
	case SlotBackground, SlotSignature, SlotSeal:
		return true
	}
	return false
}

// Student lifecycle.

type AddStudent struct {
	Name string
	CPF  string
}

// ImportStudents bulk-adds one student per non-blank line; fields split on
// comma, semicolon or tab.
type ImportStudents struct {
	Lines string
}

type RemoveStudent struct {
	ID string
}

type SetStudentDisplayName struct {
	ID    string
	Value string
}

// Instructor lifecycle.

type AddInstructor struct {
	Name         string
	Competencies string
}

type RemoveInstructor struct {
	ID string
}

// Curriculum lifecycle. Every one of these recomputes the stored total-hours
// aggregate from the remaining items.

type AddCurriculumItem struct {
	Subject string
	Hours   int
}

type UpdateCurriculumItem struct {
	ID      string
	Subject *string
	Hours   *int
}

type RemoveCurriculumItem struct {
	ID string
}

// SetTotalHours is the manual override of the aggregate; the value is kept
// verbatim until the next curriculum mutation.
type SetTotalHours struct {
	Value string
}

// Field groups.

type SetText struct {
	Field TextField
	Value string
}

type SetLayout struct {
	Param LayoutParam
	Value int
}

type SetTextAlign struct {
	Align models.TextAlign
}

type SetShowHoursColumn struct {
	Show bool
}

type SetShowTechResponsible struct {
	Show bool
}

// ToggleBoldVariable adds the token to the emphasis set, or removes it when
// already present (case-insensitively).
type ToggleBoldVariable struct {
	Token string
}

type SetImage struct {
	Slot ImageSlot
	Data string // inline-encoded payload (data URI)
}

type ClearImage struct {
	Slot ImageSlot
}

func (AddStudent) isAction()             {}
func (ImportStudents) isAction()         {}
func (RemoveStudent) isAction()          {}
func (SetStudentDisplayName) isAction()  {}
func (AddInstructor) isAction()          {}
func (RemoveInstructor) isAction()       {}
func (AddCurriculumItem) isAction()      {}
func (UpdateCurriculumItem) isAction()   {}
func (RemoveCurriculumItem) isAction()   {}
func (SetTotalHours) isAction()          {}
func (SetText) isAction()                {}
func (SetLayout) isAction()              {}
func (SetTextAlign) isAction()           {}
func (SetShowHoursColumn) isAction()     {}
func (SetShowTechResponsible) isAction() {}
func (ToggleBoldVariable) isAction()     {}
func (SetImage) isAction()               {}
func (ClearImage) isAction()             {}
