package generate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schemasync/schemasync/model"
)

// Index emits the full forward DEFINE INDEX statement. Indexes are never
// altered in place (§4.3 step 4): callers drop and recreate on any change.
func Index(table string, idx model.Index) string {
	head := fmt.Sprintf("DEFINE INDEX %s ON TABLE %s FIELDS %s", idx.Name, table, strings.Join(idx.Columns, ", "))

	typeClause := ""
	switch idx.Type {
	case model.IndexSEARCH:
		parts := []string{"SEARCH ANALYZER", idx.Analyzer}
		if idx.Highlights {
			parts = append(parts, "HIGHLIGHTS")
		}
		if idx.BM25 {
			bm25 := "BM25"
			if idx.BM25K1 != 0 || idx.BM25B != 0 {
				bm25 += fmt.Sprintf("(%s,%s)", trimFloat(idx.BM25K1), trimFloat(idx.BM25B))
			}
			parts = append(parts, bm25)
		}
		typeClause = join(parts...)
	case model.IndexMTREE:
		typeClause = fmt.Sprintf("MTREE DIMENSION %d DIST %s", idx.Dimension, idx.Dist)
	case model.IndexHNSW:
		typeClause = fmt.Sprintf("HNSW DIMENSION %d DIST %s EFC %d M %d", idx.Dimension, idx.Dist, idx.EFC, idx.M)
		if idx.M0 != 0 {
			typeClause += fmt.Sprintf(" M0 %d", idx.M0)
		}
		if idx.LM != 0 {
			typeClause += fmt.Sprintf(" LM %s", trimFloat(idx.LM))
		}
	case model.IndexHASH:
		typeClause = "HASH"
	default:
		if idx.Unique {
			typeClause = "UNIQUE"
		}
	}

	return statement(join(head, typeClause))
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// IndexRemove emits REMOVE INDEX <name> ON TABLE <table>;
func IndexRemove(table, name string) string {
	return statement(fmt.Sprintf("REMOVE INDEX %s ON TABLE %s", name, table))
}

// IndexRename emits ALTER INDEX <old> RENAME TO <new> ON TABLE <table>;
func IndexRename(table, oldName, newName string) string {
	return statement(fmt.Sprintf("ALTER INDEX %s RENAME TO %s ON TABLE %s", oldName, newName, table))
}
