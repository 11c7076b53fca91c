package generate

import (
	"fmt"
	"strings"

	"github.com/schemasync/schemasync/model"
)

func paramName(n string) string { return "$" + strings.TrimPrefix(n, "$") }

// Param emits DEFINE PARAM $<n> VALUE <e>;
func Param(p model.Param) string {
	return statement(fmt.Sprintf("DEFINE PARAM %s VALUE %s", paramName(p.Name), p.Value))
}

// ParamAlter emits ALTER PARAM $<n> VALUE <v>; — params are always altered
// granularly, never overwritten (§4.3 step 7).
func ParamAlter(name, value string) string {
	return statement(fmt.Sprintf("ALTER PARAM %s VALUE %s", paramName(name), value))
}

// ParamRemove emits REMOVE PARAM $<n>;
func ParamRemove(name string) string {
	return statement("REMOVE PARAM " + paramName(name))
}
