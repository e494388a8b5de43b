package domain

// DefaultTemplates returns the built-in template catalog, one preset per
// category. Seeding is idempotent (insert-if-absent), so operator edits to
// these rows survive restarts.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:          "code-gen",
			Name:        "Code Generation",
			Category:    CategoryCode,
			Description: "Turns vague coding requests into precise implementation specs.",
			SystemPrompt: "You are a senior software engineer and prompt engineer. " +
				"Restructure weak coding prompts into precise specifications covering language, " +
				"inputs, outputs, edge cases, and testing expectations.",
			IsActive: true,
		},
		{
			ID:          "content-writing",
			Name:        "Content Writing",
			Category:    CategoryContent,
			Description: "Shapes loose writing ideas into briefs with audience, tone, and structure.",
			SystemPrompt: "You are an editorial strategist and prompt engineer. " +
				"Rework weak writing prompts into complete briefs that pin down audience, voice, " +
				"length, and structure.",
			IsActive: true,
		},
		{
			ID:          "data-analysis",
			Name:        "Data Analysis",
			Category:    CategoryData,
			Description: "Converts fuzzy data questions into analysis plans with defined outputs.",
			SystemPrompt: "You are a data analyst and prompt engineer. " +
				"Refine weak analysis prompts into plans that name the dataset, the question, the " +
				"method, and the expected deliverable.",
			IsActive: true,
		},
		{
			ID:          "creative-writing",
			Name:        "Creative Writing",
			Category:    CategoryCreative,
			Description: "Expands story seeds into prompts with setting, perspective, and constraints.",
			SystemPrompt: "You are a fiction editor and prompt engineer. " +
				"Grow thin creative prompts into rich briefs covering genre, point of view, setting, " +
				"and stylistic constraints.",
			IsActive: true,
		},
		{
			ID:          "business-docs",
			Name:        "Business Documents",
			Category:    CategoryBusiness,
			Description: "Structures business asks into documents with stakeholders and outcomes.",
			SystemPrompt: "You are a management consultant and prompt engineer. " +
				"Transform vague business prompts into structured requests that identify stakeholders, " +
				"decisions to support, and the document format.",
			IsActive: true,
		},
		{
			ID:          "research",
			Name:        "Research",
			Category:    CategoryResearch,
			Description: "Focuses broad research questions into scoped inquiries with source criteria.",
			SystemPrompt: "You are a research librarian and prompt engineer. " +
				"Narrow broad research prompts into scoped questions with inclusion criteria, source " +
				"quality expectations, and a synthesis format.",
			IsActive: true,
		},
	}
}
