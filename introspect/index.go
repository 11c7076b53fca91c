package introspect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/schemasync/schemasync/model"
)

var indexPrefixRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+INDEX\s+`)
var indexHeaderRe = regexp.MustCompile(`(?is)^(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)\s+FIELDS\s+(.*)$`)

var indexTypeKeywords = []string{"UNIQUE", "SEARCH", "MTREE", "HNSW", "HASH"}

// ParseIndex parses one "DEFINE INDEX ..." statement into a model.Index.
func ParseIndex(stmt string) (table string, idx model.Index, err error) {
	body := indexPrefixRe.ReplaceAllString(strings.TrimSpace(stmt), "")
	body = strings.TrimSuffix(strings.TrimSpace(body), ";")

	m := indexHeaderRe.FindStringSubmatch(body)
	if m == nil {
		return "", model.Index{}, fmt.Errorf("introspect: unrecognized DEFINE INDEX statement: %q", stmt)
	}
	idx.Name = m[1]
	table = m[2]
	rest := m[3]

	scanner := newClauseScanner(rest, indexTypeKeywords)
	spans := scanner.scan()

	// Everything before the first recognized type keyword is the FIELDS
	// column list.
	columnsPart := rest
	if len(spans) > 0 {
		if idx := strings.Index(rest, spans[0].keyword); idx >= 0 {
			columnsPart = rest[:idx]
		}
	}
	idx.Columns = splitColumns(columnsPart)

	for _, span := range spans {
		switch strings.ToUpper(span.keyword) {
		case "UNIQUE":
			idx.Unique = true
			idx.Type = model.IndexBTREE
		case "HASH":
			idx.Type = model.IndexHASH
		case "SEARCH":
			idx.Type = model.IndexSEARCH
			parseSearchParams(span.body, &idx)
		case "MTREE":
			idx.Type = model.IndexMTREE
			parseVectorParams(span.body, &idx)
		case "HNSW":
			idx.Type = model.IndexHNSW
			parseVectorParams(span.body, &idx)
		}
	}
	if idx.Type == "" {
		idx.Type = model.IndexBTREE
	}

	return table, idx, nil
}

func splitColumns(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var analyzerRe = regexp.MustCompile(`(?i)ANALYZER\s+(\S+)`)
var bm25Re = regexp.MustCompile(`(?i)BM25(?:\(([\d.]+)\s*,\s*([\d.]+)\))?`)
var dimensionRe = regexp.MustCompile(`(?i)DIMENSION\s+(\d+)`)
var distRe = regexp.MustCompile(`(?i)DIST\s+(\w+)`)
var efcRe = regexp.MustCompile(`(?i)EFC\s+(\d+)`)
var mRe = regexp.MustCompile(`(?i)(?:^|\s)M\s+(\d+)`)
var m0Re = regexp.MustCompile(`(?i)M0\s+(\d+)`)
var lmRe = regexp.MustCompile(`(?i)LM\s+([\d.]+)`)

func parseSearchParams(body string, idx *model.Index) {
	if m := analyzerRe.FindStringSubmatch(body); m != nil {
		idx.Analyzer = m[1]
	}
	if strings.Contains(strings.ToUpper(body), "HIGHLIGHTS") {
		idx.Highlights = true
	}
	if m := bm25Re.FindStringSubmatch(body); m != nil {
		idx.BM25 = true
		if m[1] != "" {
			idx.BM25K1, _ = strconv.ParseFloat(m[1], 64)
		}
		if m[2] != "" {
			idx.BM25B, _ = strconv.ParseFloat(m[2], 64)
		}
	}
}

func parseVectorParams(body string, idx *model.Index) {
	if m := dimensionRe.FindStringSubmatch(body); m != nil {
		idx.Dimension, _ = strconv.Atoi(m[1])
	}
	if m := distRe.FindStringSubmatch(body); m != nil {
		idx.Dist = model.DistanceMetric(strings.ToUpper(m[1]))
	}
	if m := efcRe.FindStringSubmatch(body); m != nil {
		idx.EFC, _ = strconv.Atoi(m[1])
	}
	if m := m0Re.FindStringSubmatch(body); m != nil {
		idx.M0, _ = strconv.Atoi(m[1])
	}
	if m := mRe.FindStringSubmatch(body); m != nil {
		idx.M, _ = strconv.Atoi(m[1])
	}
	if m := lmRe.FindStringSubmatch(body); m != nil {
		idx.LM, _ = strconv.ParseFloat(m[1], 64)
	}
}
