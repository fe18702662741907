package helpers

import "testing"

func TestSanitizeURLAllowsOrdinaryURL(t *testing.T) {
	got, ok := SanitizeURL("http://example.com/a?b=c")
	if !ok || got != "http://example.com/a?b=c" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestSanitizeURLRejectsJavascriptScheme(t *testing.T) {
	if _, ok := SanitizeURL("javascript:alert(1)"); ok {
		t.Fatal("expected javascript: scheme to be rejected")
	}
}

func TestSanitizeURLRejectsObfuscatedScheme(t *testing.T) {
	if _, ok := SanitizeURL("jav%09ascript:alert(1)"); ok {
		t.Fatal("expected decoded+stripped javascript: scheme to be rejected")
	}
}

func TestSanitizeURLRejectsDataAndVbscript(t *testing.T) {
	if _, ok := SanitizeURL("data:text/html,x"); ok {
		t.Fatal("expected data: scheme to be rejected")
	}
	if _, ok := SanitizeURL("vbscript:msgbox(1)"); ok {
		t.Fatal("expected vbscript: scheme to be rejected")
	}
}

func TestSanitizeURLEmpty(t *testing.T) {
	if _, ok := SanitizeURL(""); ok {
		t.Fatal("expected empty url to be rejected")
	}
}

func TestSanitizeText(t *testing.T) {
	got := SanitizeText(`<a href="x">it's & fine</a>`)
	want := `&lt;a href=&quot;x&quot;&gt;it&#x27;s &amp; fine&lt;/a&gt;`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestUnescapeURL(t *testing.T) {
	got := UnescapeURL(`http:\/\/example.com\/a\-b`)
	want := `http://example.com/a-b`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestHTMLTagClosed(t *testing.T) {
	got := HTMLTag("pre", "content", nil, true)
	if got != "<pre>content</pre>" {
		t.Fatalf("got %q", got)
	}
}

func TestHTMLTagWithAttrsOmitsFalsy(t *testing.T) {
	got := HTMLTag("a", "text", Attrs{
		{Name: "href", Value: "http://x"},
		{Name: "title", Value: ""},
	}, true)
	want := `<a href="http://x">text</a>`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestHTMLTagUnclosed(t *testing.T) {
	got := HTMLTag("img", "", Attrs{{Name: "src", Value: "x.png"}}, false)
	if got != `<img src="x.png">` {
		t.Fatalf("got %q", got)
	}
}
