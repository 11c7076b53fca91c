package generate

import (
	"fmt"
	"strings"

	"github.com/schemasync/schemasync/model"
)

func roleList(roles []model.UserRole) string {
	strs := make([]string, 0, len(roles))
	for _, r := range roles {
		strs = append(strs, string(r))
	}
	return strings.Join(strs, ", ")
}

// User emits a DEFINE USER (or DEFINE USER OVERWRITE) statement.
func User(u model.User, overwrite bool) string {
	keyword := "DEFINE USER"
	if overwrite {
		keyword = "DEFINE USER OVERWRITE"
	}
	head := fmt.Sprintf("%s %s ON %s", keyword, u.Name, u.Level)
	passwordClause := ""
	if u.Password != "" {
		passwordClause = "PASSWORD " + quote(u.Password)
	}
	rolesClause := ""
	if len(u.Roles) > 0 {
		rolesClause = "ROLES " + roleList(u.Roles)
	}
	return statement(join(head, passwordClause, rolesClause))
}

// UserRemove emits REMOVE USER <name> ON <LEVEL>;
func UserRemove(name string, level model.UserLevel) string {
	return statement(fmt.Sprintf("REMOVE USER %s ON %s", name, level))
}
