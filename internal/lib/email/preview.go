package email

// PreviewData contains sample template data for local preview.
//
//	PreviewData[TemplateRoleChanged]["Role"] == "ADMIN"
var PreviewData = map[Template]map[string]string{
	TemplateMemberRemoved: {
		"UserName": "John",
		"BoardID":  "42",
	},
	TemplateRoleChanged: {
		"UserName": "John",
		"BoardID":  "42",
		"Role":     "ADMIN",
	},
}
