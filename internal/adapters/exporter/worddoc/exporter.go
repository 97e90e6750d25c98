package worddoc

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
)

// Exporter writes a minimal .docx: a title page followed by one heading per
// deliverable, one subheading per asset, and field/value paragraphs for the
// requested language. The OOXML package is three fixed parts, so it is
// assembled directly rather than through a document library.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "docx" }

func (e *Exporter) Export(doc ports.ExportDocument) ([]byte, error) {
	var body bytes.Buffer
	writePara(&body, "Title", doc.ProjectName)
	writePara(&body, "Subtitle", fmt.Sprintf("Language: %s", doc.Language))
	for _, sec := range doc.Sections {
		writePara(&body, "Heading1", sec.Name)
		for _, a := range sec.Assets {
			writePara(&body, "Heading2", a.Name)
			for _, f := range a.Fields {
				value := f.Values[doc.Language]
				if value == "" {
					value = "[Empty]"
				}
				writePara(&body, "", fmt.Sprintf("%s: %s", f.FieldName, value))
			}
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct{ name, content string }{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", rels},
		{"word/document.xml", fmt.Sprintf(documentXML, body.String())},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePara(buf *bytes.Buffer, style, text string) {
	buf.WriteString("<w:p>")
	if style != "" {
		fmt.Fprintf(buf, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, style)
	}
	buf.WriteString(`<w:r><w:t xml:space="preserve">`)
	_ = xml.EscapeText(buf, []byte(text))
	buf.WriteString("</w:t></w:r></w:p>")
}

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>%s</w:body>
</w:document>`
