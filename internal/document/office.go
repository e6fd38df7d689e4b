package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// docxText reads word/document.xml and joins the text runs, one line per
// paragraph.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("file docx rusak: %w", err)
	}
	for _, zf := range zr.File {
		if zf.Name != "word/document.xml" {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		return runsFromXML(rc, "t", "p")
	}
	return "", fmt.Errorf("word/document.xml tidak ditemukan")
}

var slideNumRe = regexp.MustCompile(`slide(\d+)\.xml$`)

// pptxText reads every ppt/slides/slideN.xml in numeric order and joins the
// text runs, one blank line between slides.
func pptxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("file pptx rusak: %w", err)
	}

	var slides []*zip.File
	for _, zf := range zr.File {
		if strings.HasPrefix(zf.Name, "ppt/slides/slide") && strings.HasSuffix(zf.Name, ".xml") {
			slides = append(slides, zf)
		}
	}
	if len(slides) == 0 {
		return "", fmt.Errorf("tidak ada slide di dalam file")
	}

	// Slide order is numeric, not lexicographic (slide10 after slide9).
	sort.Slice(slides, func(i, j int) bool {
		return slideNum(slides[i].Name) < slideNum(slides[j].Name)
	})

	var parts []string
	for _, zf := range slides {
		rc, err := zf.Open()
		if err != nil {
			return "", err
		}
		text, err := runsFromXML(rc, "t", "")
		rc.Close()
		if err != nil {
			return "", err
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

func slideNum(name string) int {
	m := slideNumRe.FindStringSubmatch(name)
	if len(m) != 2 {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// runsFromXML collects the character data of every <textElem> element,
// space-separated, appending a newline at the end of each <breakElem>.
func runsFromXML(r io.Reader, textElem, breakElem string) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("XML tidak valid: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == textElem {
				depth++
			}
		case xml.EndElement:
			switch {
			case t.Name.Local == textElem:
				depth--
				b.WriteByte(' ')
			case breakElem != "" && t.Name.Local == breakElem:
				b.WriteByte('\n')
			}
		case xml.CharData:
			if depth > 0 {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

// xlsxText renders every sheet as comma-separated rows under a sheet header,
// the same shape the web original produced from sheet_to_csv.
func xlsxText(data []byte) (string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("file xlsx rusak: %w", err)
	}
	defer wb.Close()

	var b strings.Builder
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "--- SHEET: %s ---\n", sheet)
		for _, row := range rows {
			b.WriteString(strings.Join(row, ","))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
