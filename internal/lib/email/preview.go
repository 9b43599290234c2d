package email

// PreviewData contains sample template data for rendering each template
// without a real recipient.
//
//	templateName -> (templateVariableName -> exampleValue)
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"DeveloperName": "Ada Lovelace",
	},
}
