package document

import (
	"testing"

	"certmaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_AddStudent(t *testing.T) {
	doc := models.DefaultDocument()

	next := Reduce(doc, AddStudent{Name: "Ana Souza", CPF: "529.982.247-25"})

	require.Len(t, next.Students, 1)
	assert.NotEmpty(t, next.Students[0].ID)
	assert.Equal(t, "Ana Souza", next.Students[0].Name)
	assert.Equal(t, "Ana Souza", next.Students[0].DisplayName)
	assert.Empty(t, doc.Students, "input state must stay untouched")
}

func TestReduce_ImportStudents(t *testing.T) {
	doc := models.DefaultDocument()

	next := Reduce(doc, ImportStudents{Lines: "Ana Souza,52998224725\nBruno Lima;111.444.777-35\n\nCarlos\tignored-extra\nSó Nome"})

	require.Len(t, next.Students, 4)
	assert.Equal(t, "Ana Souza", next.Students[0].Name)
	assert.Equal(t, "52998224725", next.Students[0].CPF)
	assert.Equal(t, "Bruno Lima", next.Students[1].Name)
	assert.Equal(t, "111.444.777-35", next.Students[1].CPF)
	assert.Equal(t, "Carlos", next.Students[2].Name)
	assert.Equal(t, "Só Nome", next.Students[3].Name)
	assert.Equal(t, "000.000.000-00", next.Students[3].CPF)
}

func TestReduce_ImportStudents_BlankNameGetsPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"whitespace name", " ,52998224725"},
		{"leading separator keeps the cpf in its slot", ",52998224725"},
		{"leading tab separator", "\t52998224725"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Reduce(models.DefaultDocument(), ImportStudents{Lines: tt.line})

			require.Len(t, next.Students, 1)
			assert.Equal(t, "Sem Nome", next.Students[0].Name)
			assert.Equal(t, "52998224725", next.Students[0].CPF)
		})
	}
}

func TestReduce_RemoveStudent(t *testing.T) {
	doc := Reduce(models.DefaultDocument(), AddStudent{Name: "Ana", CPF: "1"})
	doc = Reduce(doc, AddStudent{Name: "Bruno", CPF: "2"})

	next := Reduce(doc, RemoveStudent{ID: doc.Students[0].ID})

	require.Len(t, next.Students, 1)
	assert.Equal(t, "Bruno", next.Students[0].Name)
	assert.Len(t, doc.Students, 2)
}

func TestReduce_SetStudentDisplayName(t *testing.T) {
	doc := Reduce(models.DefaultDocument(), AddStudent{Name: "Ana Souza", CPF: "1"})

	next := Reduce(doc, SetStudentDisplayName{ID: doc.Students[0].ID, Value: "Ana S."})

	assert.Equal(t, "Ana S.", next.Students[0].DisplayName)
	assert.Equal(t, "Ana Souza", next.Students[0].Name)
	assert.Equal(t, "Ana Souza", doc.Students[0].DisplayName, "input state must stay untouched")
}

func TestReduce_CurriculumRecomputesTotalHours(t *testing.T) {
	doc := models.DefaultDocument()

	doc = Reduce(doc, AddCurriculumItem{Subject: "Normas", Hours: 10})
	doc = Reduce(doc, AddCurriculumItem{Subject: "EPIs", Hours: 20})
	doc = Reduce(doc, AddCurriculumItem{Subject: "Resgate", Hours: 5})

	assert.Equal(t, "35", doc.TotalHours)

	doc = Reduce(doc, RemoveCurriculumItem{ID: doc.Curriculum[1].ID})
	assert.Equal(t, "15", doc.TotalHours)
}

func TestReduce_ManualTotalHoursKeptUntilNextCurriculumMutation(t *testing.T) {
	doc := Reduce(models.DefaultDocument(), AddCurriculumItem{Subject: "Normas", Hours: 10})

	doc = Reduce(doc, SetTotalHours{Value: "40 (quarenta)"})
	assert.Equal(t, "40 (quarenta)", doc.TotalHours)

	// Unrelated edits keep the override.
	doc = Reduce(doc, SetText{Field: FieldCourseName, Value: "NR-35"})
	assert.Equal(t, "40 (quarenta)", doc.TotalHours)

	// The next curriculum mutation discards it.
	doc = Reduce(doc, AddCurriculumItem{Subject: "EPIs", Hours: 2})
	assert.Equal(t, "12", doc.TotalHours)
}

func TestReduce_UpdateCurriculumItem_PartialFields(t *testing.T) {
	doc := Reduce(models.DefaultDocument(), AddCurriculumItem{Subject: "Normas", Hours: 10})
	id := doc.Curriculum[0].ID

	hours := 25
	doc = Reduce(doc, UpdateCurriculumItem{ID: id, Hours: &hours})
	assert.Equal(t, "Normas", doc.Curriculum[0].Subject)
	assert.Equal(t, 25, doc.Curriculum[0].Hours)
	assert.Equal(t, "25", doc.TotalHours)

	subject := "Normas Regulamentadoras"
	doc = Reduce(doc, UpdateCurriculumItem{ID: id, Subject: &subject})
	assert.Equal(t, "Normas Regulamentadoras", doc.Curriculum[0].Subject)
	assert.Equal(t, 25, doc.Curriculum[0].Hours)
}

func TestReduce_SetText(t *testing.T) {
	doc := Reduce(models.DefaultDocument(), SetText{Field: FieldCompanyName, Value: "Horizonte LTDA"})

	assert.Equal(t, "Horizonte LTDA", doc.CompanyName)
}

func TestReduce_SetLayout(t *testing.T) {
	doc := Reduce(models.DefaultDocument(), SetLayout{Param: ParamTitleFontSize, Value: 72})

	assert.Equal(t, 72, doc.TitleFontSize)
}

func TestReduce_SetTextAlign_InvalidIgnored(t *testing.T) {
	doc := models.DefaultDocument()

	next := Reduce(doc, SetTextAlign{Align: models.TextAlign("diagonal")})
	assert.Equal(t, doc.FrontTextAlign, next.FrontTextAlign)

	next = Reduce(doc, SetTextAlign{Align: models.AlignCenter})
	assert.Equal(t, models.AlignCenter, next.FrontTextAlign)
}

func TestReduce_ToggleBoldVariable(t *testing.T) {
	doc := models.DefaultDocument()
	doc.BoldVariables = []string{"{{NOME}}", "{{CPF}}"}

	next := Reduce(doc, ToggleBoldVariable{Token: "{{DATA}}"})
	assert.Equal(t, []string{"{{NOME}}", "{{CPF}}", "{{DATA}}"}, next.BoldVariables)

	// Removal matches case-insensitively and keeps order.
	next = Reduce(next, ToggleBoldVariable{Token: "{{cpf}}"})
	assert.Equal(t, []string{"{{NOME}}", "{{DATA}}"}, next.BoldVariables)

	assert.Equal(t, []string{"{{NOME}}", "{{CPF}}"}, doc.BoldVariables, "input state must stay untouched")
}

func TestReduce_ImageSlots(t *testing.T) {
	doc := Reduce(models.DefaultDocument(), SetImage{Slot: SlotSignature, Data: "data:image/png;base64,AAAA"})
	assert.Equal(t, "data:image/png;base64,AAAA", doc.SignatureImage)

	doc = Reduce(doc, ClearImage{Slot: SlotSignature})
	assert.Empty(t, doc.SignatureImage)
}

func TestReduce_Toggles(t *testing.T) {
	doc := models.DefaultDocument()
	require.True(t, doc.ShowHoursColumn)

	doc = Reduce(doc, SetShowHoursColumn{Show: false})
	assert.False(t, doc.ShowHoursColumn)

	doc = Reduce(doc, SetShowTechResponsible{Show: false})
	assert.False(t, doc.ShowTechResponsible)
}
