package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"user": {
		"ceps:start",
		"ceps:answer",
		"ceps:navigate",
		"ceps:complete",
		"ceps:view-own",
		"report:view-own",
		"user:change_password",
	},
	"corporate": {
		"ceps:start",
		"ceps:answer",
		"ceps:navigate",
		"ceps:complete",
		"ceps:view-own",
		"report:view-own",
		"report:view-company",
		"user:change_password",
	},
	"admin": {
		"*", // everything
	},
}
