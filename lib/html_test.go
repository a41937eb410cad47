package lib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHtmlToText(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		want    []string
		wantErr error
	}{
		{
			name: "empty body",
			html: "",
			want: nil,
		},
		{
			name: "plain text",
			html: "Ele chegou.",
			want: []string{"Ele chegou."},
		},
		{
			name: "inline nodes are merged",
			html: "  <body>  x<sup>2</sup> <strike>hello</strike></body>",
			want: []string{"x2 hello"},
		},
		{
			name: "document",
			html: "<html><head><title>Título</title><style>p{}</style></head><body>" +
				"<h1>CRONOLOGIA</h1>" +
				"<p>Ele <b>chegou</b> &amp; saiu.<br/>Depois voltou.</p>" +
				"<script>x()</script>" +
				"<ul><li>Um</li><li>Dois</li></ul>" +
				"</body></html>",
			want: []string{"CRONOLOGIA", "Ele chegou & saiu.", "Depois voltou.", "Um", "Dois"},
		},
		{
			name: "void nodes do not hide text",
			html: `<p>Veja <img src="a.png"> isto.</p><meta charset="utf-8"><p>Fim.</p>`,
			want: []string{"Veja  isto.", "Fim."},
		},
	}
	for _, tt := range tests {
		got, err := HtmlToText(bytes.NewBufferString(tt.html))
		assert.Equal(t, tt.wantErr, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
