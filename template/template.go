// Package template resolves the {{VARIAVEL}} tokens of the certificate body
// text against the document aggregate and the selected student.
package template

import (
	"regexp"
	"strings"

	"certmaster/models"
)

// Tokens is every recognized variable in canonical form, aliases and
// diacritic variants included. Matching is case-insensitive.
var Tokens = []string{
	"{{NOME}}",
	"{{CPF}}",
	"{{RAZAO_SOCIAL}}",
	"{{EMPRESA}}",
	"{{CNPJ}}",
	"{{ENDERECO}}",
	"{{ENDEREÇO}}",
	"{{INSTRUTORES}}",
	"{{CURSO}}",
	"{{DATA}}",
	"{{CARGA_HORARIA}}",
	"{{CARGA HORARIA}}",
	"{{CARGA_HORÁRIA}}",
	"{{CARGA HORÁRIA}}",
	"{{PROVEDORA_NOME}}",
	"{{PROVEDORA_CNPJ}}",
}

// tokenPattern matches any recognized token, case-insensitively, against the
// original template text. A single ReplaceAllStringFunc pass means replacement
// output is never re-scanned, so a substituted value can not be mistaken for a
// literal occurrence of another token.
var tokenPattern = func() *regexp.Regexp {
	quoted := make([]string, len(Tokens))
	for i, t := range Tokens {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile("(?i)(" + strings.Join(quoted, "|") + ")")
}()

// FormatCPF formats an 11-digit CPF into the canonical 000.000.000-00
// grouping. Anything else passes through untouched.
func FormatCPF(cpf string) string {
	if cpf == "" {
		return ""
	}
	digits := make([]byte, 0, len(cpf))
	for i := 0; i < len(cpf); i++ {
		if cpf[i] >= '0' && cpf[i] <= '9' {
			digits = append(digits, cpf[i])
		}
	}
	if len(digits) != 11 {
		return cpf
	}
	d := string(digits)
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// joinInstructors renders the {{INSTRUTORES}} value: placeholder when empty,
// the sole name when one, otherwise "A, B e C".
func joinInstructors(instructors []models.Instructor) string {
	if len(instructors) == 0 {
		return "[INSTRUTORES]"
	}
	names := make([]string, len(instructors))
	for i, inst := range instructors {
		names[i] = inst.Name
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " e " + names[len(names)-1]
}

// orPlaceholder substitutes a bracketed label for blank values so missing
// data stays visually obvious in the preview.
func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// valueFor resolves one canonical (upper-cased) token.
func valueFor(token string, doc models.CertificateDocument, student *models.Student) string {
	switch token {
	case "{{NOME}}":
		if student != nil && student.Name != "" {
			return student.Name
		}
		return "[NOME DO ALUNO]"
	case "{{CPF}}":
		if student != nil {
			return FormatCPF(student.CPF)
		}
		return "[CPF]"
	case "{{RAZAO_SOCIAL}}", "{{EMPRESA}}":
		return orPlaceholder(doc.CompanyName, "[EMPRESA]")
	case "{{CNPJ}}":
		return orPlaceholder(doc.CompanyCNPJ, "[CNPJ]")
	case "{{ENDERECO}}", "{{ENDEREÇO}}":
		return orPlaceholder(doc.Address, "[ENDEREÇO]")
	case "{{INSTRUTORES}}":
		return joinInstructors(doc.Instructors)
	case "{{CURSO}}":
		return orPlaceholder(doc.CourseName, "[NOME DO CURSO]")
	case "{{DATA}}":
		return orPlaceholder(doc.CourseDate, "[DATA]")
	case "{{CARGA_HORARIA}}", "{{CARGA HORARIA}}", "{{CARGA_HORÁRIA}}", "{{CARGA HORÁRIA}}":
		return orPlaceholder(doc.TotalHours, "0")
	case "{{PROVEDORA_NOME}}":
		return orPlaceholder(doc.ProviderName, "[PROVEDORA]")
	case "{{PROVEDORA_CNPJ}}":
		return orPlaceholder(doc.ProviderCNPJ, "[CNPJ PROVEDORA]")
	}
	return token
}

// emphasized reports whether token (canonical form) is in the document's
// bold set, case-insensitively.
func emphasized(token string, doc models.CertificateDocument) bool {
	for _, bv := range doc.BoldVariables {
		if strings.EqualFold(bv, token) {
			return true
		}
	}
	return false
}

// Replace substitutes every recognized token in text with its resolved value.
// Unrecognized bracketed text is returned unchanged; student may be nil.
// Values whose token is in the document's bold set are wrapped in
// <strong>...</strong>; the wrapping covers the substituted value only.
func Replace(text string, doc models.CertificateDocument, student *models.Student) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		token := strings.ToUpper(match)
		value := valueFor(token, doc, student)
		if emphasized(token, doc) {
			return "<strong>" + value + "</strong>"
		}
		return value
	})
}
