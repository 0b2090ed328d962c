package source

import "testing"

func TestNewDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
		head  string
		body  string
		tail  string
	}{
		{
			name:  "full page",
			input: "<!DOCTYPE html><html><head><title>T</title></head><body class=\"post\">\n<h2>A</h2>\n</body></html>\n",
			head:  "<!DOCTYPE html><html><head><title>T</title></head><body class=\"post\">",
			body:  "\n<h2>A</h2>\n",
			tail:  "</body></html>\n",
		},
		{
			name:  "fragment",
			input: "<h2>Only</h2><p>x</p>",
			body:  "<h2>Only</h2><p>x</p>",
		},
		{
			name:  "no body tag",
			input: "<html><head><title>T</title></head><h2>A</h2></html>",
			head:  "<html><head><title>T</title></head>",
			body:  "<h2>A</h2>",
			tail:  "</html>",
		},
		{
			name:  "unclosed body",
			input: "<body><h2>A</h2>",
			head:  "<body>",
			body:  "<h2>A</h2>",
		},
		{
			name:  "body text inside title",
			input: "<html><head><title><body></title></head><body><p>x</p></body></html>",
			head:  "<html><head><title><body></title></head><body>",
			body:  "<p>x</p>",
			tail:  "</body></html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument("page.html", tt.input)
			if doc.Head != tt.head || doc.Content != tt.body || doc.Tail != tt.tail {
				t.Errorf("NewDocument() = %q | %q | %q, want %q | %q | %q",
					doc.Head, doc.Content, doc.Tail, tt.head, tt.body, tt.tail)
			}
			if got := doc.Page(doc.Content); got != tt.input {
				t.Errorf("Page() = %q, want input back", got)
			}
		})
	}
}
