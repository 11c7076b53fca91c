// Package rename matches a desired entity against a disappeared current
// entity using the desired entity's user-annotated prior-name hint, so the
// diff engine can emit a single ALTER ... RENAME instead of a remove+create
// pair (§4.2).
package rename

// Match looks up which of the disappeared names (candidates, by current
// name) a desired entity's previousName hints refer to. previousName may
// list more than one candidate (the entity went through several renames
// across migrations that were never applied individually); the first hint
// that matches a still-disappeared candidate wins.
func Match(previousNames []string, disappeared map[string]bool) (oldName string, ok bool) {
	for _, hint := range previousNames {
		if disappeared[hint] {
			return hint, true
		}
	}
	return "", false
}
