package extract

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

const acmePage = `<html>
<head>
<title>Welcome to Acme</title>
<script type="application/ld+json">
{"@context":"https://schema.org","@type":"Organization","name":"Acme","email":"info@acme.com","sameAs":["https://facebook.com/acme"]}
</script>
</head>
<body><p>Call us: +966 55 123 4567</p></body>
</html>`

func TestAnalyzeReconcilesStructuredAndPatternSignals(t *testing.T) {
	record, err := NewAnalyzer("SA").Analyze("https://acme.example/contact", acmePage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Name == nil || *record.Name != "Acme" {
		t.Fatalf("expected structured name Acme, got %v", record.Name)
	}
	if !reflect.DeepEqual(record.Emails, []string{"info@acme.com"}) {
		t.Fatalf("unexpected emails: %#v", record.Emails)
	}
	if !reflect.DeepEqual(record.Phones, []string{"+966551234567"}) {
		t.Fatalf("expected E.164 phone from page text, got %#v", record.Phones)
	}
	if len(record.Whatsapp) != 0 {
		t.Fatalf("expected no whatsapp links, got %#v", record.Whatsapp)
	}
	if !reflect.DeepEqual(record.Socials, map[string][]string{"facebook": {"https://facebook.com/acme"}}) {
		t.Fatalf("unexpected socials: %#v", record.Socials)
	}
}

func TestAnalyzeFallsBackToTitleAndCollectsWhatsapp(t *testing.T) {
	html := `<html><head><title>Example Co</title></head>
<body><a href="https://wa.me/15551234567">Chat with us</a></body></html>`

	record, err := NewAnalyzer("SA").Analyze("https://example.co", html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Name == nil || *record.Name != "Example Co" {
		t.Fatalf("expected title fallback name, got %v", record.Name)
	}
	if len(record.Emails) != 0 || len(record.Phones) != 0 {
		t.Fatalf("expected empty emails and phones, got %#v / %#v", record.Emails, record.Phones)
	}
	if !reflect.DeepEqual(record.Whatsapp, []string{"https://wa.me/15551234567"}) {
		t.Fatalf("unexpected whatsapp links: %#v", record.Whatsapp)
	}
	if len(record.Socials) != 0 {
		t.Fatalf("expected no socials, got %#v", record.Socials)
	}
}

func TestAnalyzeShortCircuitsLinkedInHosts(t *testing.T) {
	for _, pageURL := range []string{
		"https://www.linkedin.com/company/acme",
		"https://sa.linkedin.com/in/someone",
		"https://linkedin.com/company/acme/people/",
	} {
		t.Run(pageURL, func(t *testing.T) {
			record, err := NewAnalyzer("SA").Analyze(pageURL, "<html><body>ignored</body></html>")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if record.Name == nil || *record.Name != "LinkedIn" {
				t.Fatalf("expected stub name LinkedIn, got %v", record.Name)
			}
			if len(record.Emails) != 0 || len(record.Phones) != 0 || len(record.Whatsapp) != 0 {
				t.Fatalf("expected empty contact fields in stub: %#v", record)
			}
			if !reflect.DeepEqual(record.Socials, map[string][]string{"linkedin": {pageURL}}) {
				t.Fatalf("expected linkedin marker entry, got %#v", record.Socials)
			}
		})
	}

	// An unrelated host embedding the word stays on the normal pipeline.
	record, err := NewAnalyzer("SA").Analyze("https://blog.example.com/why-linkedin-works", "<html><head><title>Blog</title></head></html>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Name == nil || *record.Name != "Blog" {
		t.Fatalf("expected normal analysis for non-linkedin host, got %v", record.Name)
	}
}

func TestAnalyzeStructuredNameWinsOverResolver(t *testing.T) {
	html := `<html><head>
<title>Fallback Title</title>
<meta property="og:site_name" content="Fallback Site">
<script type="application/ld+json">{"@type":"Organization","name":"Structured Name"}</script>
</head></html>`

	record, err := NewAnalyzer("SA").Analyze("https://example.com", html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Name == nil || *record.Name != "Structured Name" {
		t.Fatalf("expected structured name to win, got %v", record.Name)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	analyzer := NewAnalyzer("SA")

	first, err := analyzer.Analyze("https://acme.example/contact", acmePage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := analyzer.Analyze("https://acme.example/contact", acmePage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Fatalf("same input produced different records:\n%s\n%s", a, b)
	}
}

func TestAnalyzeKeepsAdjacentElementsSeparate(t *testing.T) {
	// Minified markup: no whitespace between sibling elements.
	html := `<html><body><p>info@acme.com</p><p>Next section</p><div>+966 55 123 4567</div><div>890</div></body></html>`

	record, err := NewAnalyzer("SA").Analyze("https://example.com", html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(record.Emails, []string{"info@acme.com"}) {
		t.Fatalf("email must not absorb the next element's text, got %#v", record.Emails)
	}
	if !reflect.DeepEqual(record.Phones, []string{"+966551234567"}) {
		t.Fatalf("phone must not absorb the next element's digits, got %#v", record.Phones)
	}
}

func TestAnalyzeDropsInvalidStructuredPhones(t *testing.T) {
	html := `<html><head>
<script type="application/ld+json">{"@type":"Organization","name":"Org","telephone":"not a phone"}</script>
</head></html>`

	record, err := NewAnalyzer("SA").Analyze("https://example.com", html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(record.Phones) != 0 {
		t.Fatalf("invalid publisher phone should be dropped, got %#v", record.Phones)
	}
}

func TestNewAnalyzerNormalizesRegion(t *testing.T) {
	if got := NewAnalyzer("").Region(); got != DefaultRegion {
		t.Fatalf("expected default region, got %s", got)
	}
	if got := NewAnalyzer(" ae ").Region(); got != "AE" {
		t.Fatalf("expected AE, got %s", got)
	}
}
