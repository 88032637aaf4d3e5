package template

import (
	"strings"
	"testing"

	"certmaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() models.CertificateDocument {
	return models.CertificateDocument{
		CompanyName:  "Construtora Horizonte LTDA",
		CompanyCNPJ:  "11.222.333/0001-81",
		Address:      "Av. Paulista, 1000 - São Paulo/SP",
		ProviderName: "CertificaMaster Treinamentos",
		ProviderCNPJ: "00.000.000/0001-91",
		CourseName:   "NR-35 Trabalho em Altura",
		CourseDate:   "15/03/2026",
		TotalHours:   "40",
		Instructors: []models.Instructor{
			{ID: "i1", Name: "Carlos Pereira", Competencies: "Engenheiro de Segurança"},
		},
	}
}

func TestReplace_SubstitutesStudentFields(t *testing.T) {
	doc := sampleDocument()
	student := models.Student{Name: "Ana Souza", CPF: "52998224725"}

	got := Replace("Certificamos que {{NOME}}, CPF {{CPF}}.", doc, &student)

	assert.Equal(t, "Certificamos que Ana Souza, CPF 529.982.247-25.", got)
}

func TestReplace_NilStudentUsesPlaceholders(t *testing.T) {
	got := Replace("{{NOME}} - {{CPF}}", sampleDocument(), nil)

	assert.Equal(t, "[NOME DO ALUNO] - [CPF]", got)
}

func TestReplace_BlankDocumentFieldsUsePlaceholders(t *testing.T) {
	var doc models.CertificateDocument

	got := Replace("{{RAZAO_SOCIAL}} / {{CNPJ}} / {{ENDERECO}} / {{CURSO}} / {{DATA}} / {{CARGA_HORARIA}}", doc, nil)

	assert.Equal(t, "[EMPRESA] / [CNPJ] / [ENDEREÇO] / [NOME DO CURSO] / [DATA] / 0", got)
}

func TestReplace_CaseInsensitive(t *testing.T) {
	doc := sampleDocument()

	got := Replace("curso: {{curso}}, data: {{Data}}", doc, nil)

	assert.Equal(t, "curso: NR-35 Trabalho em Altura, data: 15/03/2026", got)
}

func TestReplace_AliasesAndDiacritics(t *testing.T) {
	doc := sampleDocument()

	tests := []struct {
		token string
		want  string
	}{
		{"{{EMPRESA}}", doc.CompanyName},
		{"{{RAZAO_SOCIAL}}", doc.CompanyName},
		{"{{ENDEREÇO}}", doc.Address},
		{"{{ENDERECO}}", doc.Address},
		{"{{CARGA HORÁRIA}}", "40"},
		{"{{CARGA_HORÁRIA}}", "40"},
		{"{{CARGA HORARIA}}", "40"},
		{"{{PROVEDORA_NOME}}", doc.ProviderName},
		{"{{PROVEDORA_CNPJ}}", doc.ProviderCNPJ},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Replace(tt.token, doc, nil))
		})
	}
}

func TestReplace_UnknownTokenLeftVerbatim(t *testing.T) {
	got := Replace("olá {{DESCONHECIDO}} mundo", sampleDocument(), nil)

	assert.Equal(t, "olá {{DESCONHECIDO}} mundo", got)
}

func TestReplace_SubstitutedValueNeverRescanned(t *testing.T) {
	doc := sampleDocument()
	// A field value that happens to contain a token must come out literally.
	doc.CourseName = "Curso {{NOME}}"

	got := Replace("{{CURSO}}", doc, nil)

	assert.Equal(t, "Curso {{NOME}}", got)
}

func TestReplace_EmphasisWrapsValueOnly(t *testing.T) {
	doc := sampleDocument()
	doc.BoldVariables = []string{"{{CURSO}}"}

	got := Replace("o curso {{CURSO}} terminou", doc, nil)

	assert.Equal(t, "o curso <strong>NR-35 Trabalho em Altura</strong> terminou", got)
	assert.Equal(t, 1, strings.Count(got, "<strong>"))
}

func TestReplace_EmphasisMatchesCaseInsensitively(t *testing.T) {
	doc := sampleDocument()
	doc.BoldVariables = []string{"{{curso}}"}

	got := Replace("{{CURSO}}", doc, nil)

	assert.Equal(t, "<strong>NR-35 Trabalho em Altura</strong>", got)
}

func TestReplace_Instructors(t *testing.T) {
	doc := sampleDocument()

	doc.Instructors = nil
	assert.Equal(t, "[INSTRUTORES]", Replace("{{INSTRUTORES}}", doc, nil))

	doc.Instructors = []models.Instructor{{Name: "Carlos Pereira"}}
	assert.Equal(t, "Carlos Pereira", Replace("{{INSTRUTORES}}", doc, nil))

	doc.Instructors = []models.Instructor{
		{Name: "Ana"}, {Name: "Bruno"}, {Name: "Carla"},
	}
	assert.Equal(t, "Ana, Bruno e Carla", Replace("{{INSTRUTORES}}", doc, nil))
}

func TestFormatCPF(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare digits", "52998224725", "529.982.247-25"},
		{"already formatted", "529.982.247-25", "529.982.247-25"},
		{"wrong length passes through", "1234", "1234"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCPF(tt.in))
		})
	}
}

func TestSegments(t *testing.T) {
	segs := Segments("antes <strong>negrito</strong> depois")

	require.Len(t, segs, 3)
	assert.Equal(t, Segment{Text: "antes "}, segs[0])
	assert.Equal(t, Segment{Text: "negrito", Bold: true}, segs[1])
	assert.Equal(t, Segment{Text: " depois"}, segs[2])
}

func TestSegments_UnterminatedMarker(t *testing.T) {
	segs := Segments("texto <strong>sem fim")

	require.Len(t, segs, 2)
	assert.False(t, segs[0].Bold)
	assert.Equal(t, Segment{Text: "sem fim", Bold: true}, segs[1])
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "a b c", Plain("a <strong>b</strong> c"))
}
