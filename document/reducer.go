package document

import (
	"strconv"
	"strings"

	"certmaster/models"
)

// layoutSetters maps each slider to its field. Kept next to the LayoutParam
// constants so adding a slider touches one file.
var layoutSetters = map[LayoutParam]func(*models.CertificateDocument, int){
	ParamBackSplitRatio:                func(d *models.CertificateDocument, v int) { d.BackSplitRatio = v },
	ParamHoursColumnWidth:              func(d *models.CertificateDocument, v int) { d.HoursColumnWidth = v },
	ParamBackRowPadding:                func(d *models.CertificateDocument, v int) { d.BackRowPadding = v },
	ParamBackCurriculumFontSize:        func(d *models.CertificateDocument, v int) { d.BackCurriculumFontSize = v },
	ParamBackHeaderFontSize:            func(d *models.CertificateDocument, v int) { d.BackHeaderFontSize = v },
	ParamFooterFontSize:                func(d *models.CertificateDocument, v int) { d.FooterFontSize = v },
	ParamBackInstitutionVerticalOffset: func(d *models.CertificateDocument, v int) { d.BackInstitutionVerticalOffset = v },
	ParamBackCurriculumVerticalOffset:  func(d *models.CertificateDocument, v int) { d.BackCurriculumVerticalOffset = v },
	ParamMainTextVerticalOffset:        func(d *models.CertificateDocument, v int) { d.MainTextVerticalOffset = v },
	ParamTitleVerticalOffset:           func(d *models.CertificateDocument, v int) { d.TitleVerticalOffset = v },
	ParamTitleFontSize:                 func(d *models.CertificateDocument, v int) { d.TitleFontSize = v },
	ParamSubtitleFontSize:              func(d *models.CertificateDocument, v int) { d.SubtitleFontSize = v },
	ParamTitleSpacing:                  func(d *models.CertificateDocument, v int) { d.TitleSpacing = v },
	ParamBodyVerticalOffset:            func(d *models.CertificateDocument, v int) { d.BodyVerticalOffset = v },
	ParamHighlightNameVerticalOffset:   func(d *models.CertificateDocument, v int) { d.HighlightNameVerticalOffset = v },
	ParamHighlightNameFontSize:         func(d *models.CertificateDocument, v int) { d.HighlightNameFontSize = v },
	ParamFrontSidePadding:              func(d *models.CertificateDocument, v int) { d.FrontSidePadding = v },
	ParamSignaturesVerticalOffset:      func(d *models.CertificateDocument, v int) { d.SignaturesVerticalOffset = v },
	ParamSignaturesHorizontalPadding:   func(d *models.CertificateDocument, v int) { d.SignaturesHorizontalPadding = v },
	ParamSignatureFontSize:             func(d *models.CertificateDocument, v int) { d.SignatureFontSize = v },
	ParamFrontHeaderPadding:            func(d *models.CertificateDocument, v int) { d.FrontHeaderPadding = v },
	ParamFrontFooterPadding:            func(d *models.CertificateDocument, v int) { d.FrontFooterPadding = v },
	ParamBackHeaderPadding:             func(d *models.CertificateDocument, v int) { d.BackHeaderPadding = v },
	ParamBackFooterPadding:             func(d *models.CertificateDocument, v int) { d.BackFooterPadding = v },
	ParamFrontBorderWidth:              func(d *models.CertificateDocument, v int) { d.FrontBorderWidth = v },
}

// Reduce applies one action to the aggregate and returns the next state. It
// never mutates slices shared with the input, so callers can keep old states
// for replay.
func Reduce(doc models.CertificateDocument, action Action) models.CertificateDocument {
	switch a := action.(type) {
	case AddStudent:
		doc.Students = append(copyStudents(doc.Students), models.NewStudent(a.Name, a.CPF))

	case ImportStudents:
		students := copyStudents(doc.Students)
		for _, line := range strings.Split(a.Lines, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			// Positional split: a leading separator means a blank name, not
			// a shifted CPF, so empty fields must survive the split.
			parts := strings.Split(importSeparators.Replace(line), ",")
			name := "Sem Nome"
			cpf := "000.000.000-00"
			if strings.TrimSpace(parts[0]) != "" {
				name = strings.TrimSpace(parts[0])
			}
			if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
				cpf = strings.TrimSpace(parts[1])
			}
			students = append(students, models.NewStudent(name, cpf))
		}
		doc.Students = students

	case RemoveStudent:
		students := make([]models.Student, 0, len(doc.Students))
		for _, s := range doc.Students {
			if s.ID != a.ID {
				students = append(students, s)
			}
		}
		doc.Students = students

	case SetStudentDisplayName:
		students := copyStudents(doc.Students)
		for i := range students {
			if students[i].ID == a.ID {
				students[i].DisplayName = a.Value
			}
		}
		doc.Students = students

	case AddInstructor:
		doc.Instructors = append(copyInstructors(doc.Instructors), models.NewInstructor(a.Name, a.Competencies))

	case RemoveInstructor:
		instructors := make([]models.Instructor, 0, len(doc.Instructors))
		for _, inst := range doc.Instructors {
			if inst.ID != a.ID {
				instructors = append(instructors, inst)
			}
		}
		doc.Instructors = instructors

	case AddCurriculumItem:
		doc.Curriculum = append(copyCurriculum(doc.Curriculum), models.NewCurriculumItem(a.Subject, a.Hours))
		doc.TotalHours = sumHours(doc.Curriculum)

	case UpdateCurriculumItem:
		items := copyCurriculum(doc.Curriculum)
		for i := range items {
			if items[i].ID != a.ID {
				continue
			}
			if a.Subject != nil {
				items[i].Subject = *a.Subject
			}
			if a.Hours != nil {
				items[i].Hours = *a.Hours
			}
		}
		doc.Curriculum = items
		doc.TotalHours = sumHours(doc.Curriculum)

	case RemoveCurriculumItem:
		items := make([]models.CurriculumItem, 0, len(doc.Curriculum))
		for _, item := range doc.Curriculum {
			if item.ID != a.ID {
				items = append(items, item)
			}
		}
		doc.Curriculum = items
		doc.TotalHours = sumHours(doc.Curriculum)

	case SetTotalHours:
		// Manual override, kept verbatim until the next curriculum mutation.
		doc.TotalHours = a.Value

	case SetText:
		setTextField(&doc, a.Field, a.Value)

	case SetLayout:
		if set, ok := layoutSetters[a.Param]; ok {
			set(&doc, a.Value)
		}

	case SetTextAlign:
		if a.Align.Valid() {
			doc.FrontTextAlign = a.Align
		}

	case SetShowHoursColumn:
		doc.ShowHoursColumn = a.Show

	case SetShowTechResponsible:
		doc.ShowTechResponsible = a.Show

	case ToggleBoldVariable:
		doc.BoldVariables = toggleToken(doc.BoldVariables, a.Token)

	case SetImage:
		setImageSlot(&doc, a.Slot, a.Data)

	case ClearImage:
		setImageSlot(&doc, a.Slot, "")
	}

	return doc
}

func setTextField(doc *models.CertificateDocument, field TextField, value string) {
	switch field {
	case FieldCompanyName:
		doc.CompanyName = value
	case FieldCompanyCNPJ:
		doc.CompanyCNPJ = value
	case FieldAddress:
		doc.Address = value
	case FieldProviderName:
		doc.ProviderName = value
	case FieldProviderCNPJ:
		doc.ProviderCNPJ = value
	case FieldTechResponsibleName:
		doc.TechResponsibleName = value
	case FieldTechResponsibleCompetencies:
		doc.TechResponsibleCompetencies = value
	case FieldCourseName:
		doc.CourseName = value
	case FieldCourseDate:
		doc.CourseDate = value
	case FieldBaseText:
		doc.BaseText = value
	}
}

func setImageSlot(doc *models.CertificateDocument, slot ImageSlot, data string) {
	switch slot {
	case SlotBackground:
		doc.BgImage = data
	case SlotSignature:
		doc.SignatureImage = data
	case SlotSeal:
		doc.DigitalSeal = data
	}
}

// importSeparators normalizes the accepted bulk-import field separators to a
// single delimiter.
var importSeparators = strings.NewReplacer(";", ",", "\t", ",")

// toggleToken flips membership in the emphasis set, preserving order and the
// no-duplicates invariant.
func toggleToken(set []string, token string) []string {
	out := make([]string, 0, len(set)+1)
	removed := false
	for _, t := range set {
		if strings.EqualFold(t, token) {
			removed = true
			continue
		}
		out = append(out, t)
	}
	if !removed {
		out = append(out, token)
	}
	return out
}

func sumHours(items []models.CurriculumItem) string {
	total := 0
	for _, item := range items {
		total += item.Hours
	}
	return strconv.Itoa(total)
}

func copyStudents(in []models.Student) []models.Student {
	out := make([]models.Student, len(in))
	copy(out, in)
	return out
}

func copyInstructors(in []models.Instructor) []models.Instructor {
	out := make([]models.Instructor, len(in))
	copy(out, in)
	return out
}

func copyCurriculum(in []models.CurriculumItem) []models.CurriculumItem {
	out := make([]models.CurriculumItem, len(in))
	copy(out, in)
	return out
}
