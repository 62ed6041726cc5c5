package rbac

// Default policy. Evaluators own their evaluation session end to end;
// admins additionally manage accounts.
var RolePermissions = map[string][]string{
	"evaluator": {
		"rubric:view",
		"evaluation:*",
		"report:view",
		"report:import",
		"assets:upload",
		"user:change_password",
	},
	"admin": {
		"*", // everything
	},
}
