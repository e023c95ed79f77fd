package academia

import (
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Previsão</title><script>var x = 1;</script></head>
<body>
<style>.ad { display: none }</style>
<h2>Quem será o vencedor?</h2>
<div><span>Corinthians</span> <b>vs</b> <span>Sport</span></div>
<p>19/04/2025 - 16:00</p>
<table>
<tr><th>Casa</th><th>Empate</th><th>Fora</th></tr>
<tr><td>1.5</td><td>3.9</td><td>7.5</td></tr>
</table>
<script>trackPageView();</script>
</body>
</html>`

func TestReduceHTMLLineStructure(t *testing.T) {
	text, err := ReduceHTML(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ReduceHTML: %v", err)
	}

	lines := strings.Split(text, "\n")
	want := []string{
		"Quem será o vencedor?",
		"Corinthians vs Sport",
		"19/04/2025 - 16:00",
		"Casa Empate Fora",
		"1.5 3.9 7.5",
	}
	for _, expected := range want {
		found := false
		for _, line := range lines {
			if strings.TrimSpace(line) == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected line %q in output:\n%s", expected, text)
		}
	}
}

func TestReduceHTMLSkipsScriptAndStyle(t *testing.T) {
	text, err := ReduceHTML(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ReduceHTML: %v", err)
	}

	for _, banned := range []string{"trackPageView", "display: none", "var x"} {
		if strings.Contains(text, banned) {
			t.Errorf("output leaked %q:\n%s", banned, text)
		}
	}
}

func TestReduceHTMLEmptyBody(t *testing.T) {
	text, err := ReduceHTML(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("ReduceHTML: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty output, got %q", text)
	}
}
