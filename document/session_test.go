package document

import (
	"testing"

	"certmaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	states []models.CertificateDocument
}

func (s *recordingSaver) NotifyChange(doc models.CertificateDocument) {
	s.states = append(s.states, doc)
}

func TestSession_DispatchNotifiesSaverWithEveryState(t *testing.T) {
	saver := &recordingSaver{}
	session := NewSession(models.DefaultDocument(), saver)

	session.Dispatch(SetText{Field: FieldCourseName, Value: "NR-35"})
	session.Dispatch(AddStudent{Name: "Ana", CPF: "52998224725"})

	require.Len(t, saver.states, 2)
	assert.Equal(t, "NR-35", saver.states[0].CourseName)
	assert.Len(t, saver.states[1].Students, 1)
}

func TestSession_DocumentReturnsSnapshot(t *testing.T) {
	session := NewSession(models.DefaultDocument(), nil)

	before := session.Document()
	session.Dispatch(SetText{Field: FieldCompanyName, Value: "Horizonte LTDA"})

	assert.Empty(t, before.CompanyName)
	assert.Equal(t, "Horizonte LTDA", session.Document().CompanyName)
}

func TestSession_NilSaver(t *testing.T) {
	session := NewSession(models.DefaultDocument(), nil)

	next := session.Dispatch(SetTotalHours{Value: "40"})

	assert.Equal(t, "40", next.TotalHours)
}
