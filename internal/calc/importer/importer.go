// Package importer reads batches of calculation requests from .xlsx sheets.
//
// The first row names the columns. "kind" is required and "id" is optional;
// every other header is a request field by its JSON name, either bare
// ("width", "deadLoad", "axialLoadKN") or qualified ("params.soilType").
// List and map fields such as soilLayers take a YAML flow value in the cell.
package importer

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"Keystone/internal/calc/batch"
	"Keystone/internal/models"
)

// RowError reports a row that could not be turned into a request. Row is the
// 1-based sheet row.
type RowError struct {
	Row int    `json:"row"`
	Err string `json:"error"`
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %s", e.Row, e.Err) }

type Result struct {
	Sheet  string       `json:"sheet"`
	Items  []batch.Item `json:"items"`
	Errors []RowError   `json:"errors,omitempty"`
}

// ReadFile imports sheet from the workbook at path; an empty sheet name
// selects the first sheet.
func ReadFile(path, sheet string) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return read(f, sheet)
}

func Read(r io.Reader, sheet string) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("invalid file: %w", err)
	}
	defer f.Close()
	return read(f, sheet)
}

func read(f *excelize.File, sheet string) (Result, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Result{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return Result{}, fmt.Errorf("sheet %q is empty", sheet)
	}

	cols, err := header(rows[0])
	if err != nil {
		return Result{}, err
	}

	out := Result{Sheet: sheet}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		item, err := parseRow(cols, row)
		if err != nil {
			out.Errors = append(out.Errors, RowError{Row: i + 1, Err: err.Error()})
			continue
		}
		if item.ID == "" {
			item.ID = fmt.Sprintf("%s!%d", sheet, i+1)
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// column is where a header lands in the request.
type column struct {
	name    string
	section string // "" for top-level request fields
	key     string
	kind    reflect.Kind
}

const (
	colID   = "id"
	colKind = "kind"
)

var fields = requestFields()

// requestFields indexes scalar and list fields of models.Request by their
// lower-cased JSON name, bare and section-qualified.
func requestFields() map[string]column {
	idx := map[string]column{}
	add := func(name string, c column) {
		if _, dup := idx[strings.ToLower(name)]; !dup {
			idx[strings.ToLower(name)] = c
		}
	}
	t := reflect.TypeOf(models.Request{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		if f.Type.Kind() != reflect.Struct {
			add(name, column{key: name, kind: f.Type.Kind()})
			continue
		}
		for j := 0; j < f.Type.NumField(); j++ {
			sub := f.Type.Field(j)
			key := jsonName(sub)
			c := column{section: name, key: key, kind: sub.Type.Kind()}
			add(name+"."+key, c)
			add(key, c)
		}
	}
	return idx
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}

func header(row []string) ([]column, error) {
	cols := make([]column, len(row))
	hasKind := false
	for i, h := range row {
		h = strings.TrimSpace(h)
		switch lower := strings.ToLower(h); lower {
		case "":
		case colID, colKind:
			cols[i] = column{name: lower}
			hasKind = hasKind || lower == colKind
		default:
			c, ok := fields[lower]
			if !ok {
				return nil, fmt.Errorf("unknown column %q", h)
			}
			c.name = h
			cols[i] = c
		}
	}
	if !hasKind {
		return nil, fmt.Errorf("missing %q column", colKind)
	}
	return cols, nil
}

func parseRow(cols []column, row []string) (batch.Item, error) {
	var item batch.Item
	root := &yaml.Node{Kind: yaml.MappingNode}
	sections := map[string]*yaml.Node{}

	for i, cell := range row {
		if i >= len(cols) {
			break
		}
		cell = strings.TrimSpace(cell)
		c := cols[i]
		if cell == "" || (c.name == "" && c.key == "") {
			continue
		}
		switch c.name {
		case colID:
			item.ID = cell
			continue
		case colKind:
			item.Kind = models.Kind(cell)
			continue
		}

		value, err := cellNode(c, cell)
		if err != nil {
			return batch.Item{}, fmt.Errorf("column %q: %w", c.name, err)
		}
		target := root
		if c.section != "" {
			target = sections[c.section]
			if target == nil {
				target = &yaml.Node{Kind: yaml.MappingNode}
				sections[c.section] = target
				root.Content = append(root.Content, scalar(c.section, "!!str"), target)
			}
		}
		target.Content = append(target.Content, scalar(c.key, "!!str"), value)
	}

	if item.Kind == "" {
		return batch.Item{}, fmt.Errorf("kind is empty")
	}
	if err := root.Decode(&item.Request); err != nil {
		return batch.Item{}, err
	}
	return item, nil
}

// cellNode types a cell: text fields stay strings, lists and maps are parsed
// as YAML flow values, numbers and booleans resolve implicitly.
func cellNode(c column, cell string) (*yaml.Node, error) {
	switch c.kind {
	case reflect.String:
		return scalar(cell, "!!str"), nil
	case reflect.Slice, reflect.Map, reflect.Struct:
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(cell), &doc); err != nil {
			return nil, err
		}
		if len(doc.Content) == 0 {
			return nil, fmt.Errorf("empty value")
		}
		return doc.Content[0], nil
	}
	return scalar(cell, ""), nil
}

func scalar(v, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v}
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
