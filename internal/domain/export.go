package domain

import (
	"strconv"
	"strings"
)

// ExportTrailer is appended verbatim to every exported framework document.
const ExportTrailer = `## Integration with Thesis Project Framework:

### 1. Data Analysis Pipeline
- Keep your analysis scripts in ` + "`code/data-analysis/`" + ` for statistical analysis
- Clean and prepare datasets before analysis, keeping the raw files untouched
- Record correlation, regression, and hypothesis testing results in ` + "`results/`" + `

### 2. Visualization Tools
- Keep plotting scripts in ` + "`code/visualization/`" + ` and generate publication-ready figures
- Create interactive visualizations for presentations
- Export figures in multiple formats (PNG, PDF, SVG)

### 3. Documentation Structure
- Update ` + "`docs/framework.md`" + ` with your research framework
- Use ` + "`docs/literature-review/literature_review_template.md`" + ` for literature review
- Document methodology in ` + "`docs/methodology/methodology_template.md`" + `

### 4. Project Management
- Track progress using the project structure
- Use ` + "`data/`" + ` directory for your datasets
- Maintain version control with the provided ` + "`.gitignore`" + `

## Recommended Workflow:
1. **Data Collection**: Store raw data in ` + "`data/raw/`" + `
2. **Preprocessing**: Write cleaned datasets to ` + "`data/processed/`" + `
3. **Analysis**: Run statistical tests with the scripts in ` + "`code/data-analysis/`" + `
4. **Visualization**: Create plots with the scripts in ` + "`code/visualization/`" + `
5. **Documentation**: Update framework and methodology documents
6. **Results**: Store outputs in ` + "`results/`" + ` directory

## Next Steps:
1. Scaffold the project structure: ` + "`thesis init`" + `
2. Test the framework with sample data
3. Customize scripts for your specific research needs
4. Begin data collection and analysis
5. Update documentation as your research evolves

---
*Generated by Thesis Framework Assistant*
`

// ExportDocument renders d as the framework markdown document.
//
// Blank list entries are dropped and the remaining ones renumbered from 1;
// scalars are emitted verbatim, empty included. The output depends only on d.
func ExportDocument(d FrameworkDraft) string {
	var b strings.Builder

	b.WriteString("# THESIS WRITING FRAMEWORK\n\n")

	b.WriteString("## Research Overview\n")
	b.WriteString("**Field/Area**: " + d.ResearchArea + "\n")
	b.WriteString("**Tentative Title**: " + d.TentativeTitle + "\n\n")

	b.WriteString("## Problem Statement\n")
	b.WriteString(d.ProblemStatement + "\n\n")

	b.WriteString("## Research Objectives\n")
	b.WriteString(numberedList(d.Objectives) + "\n\n")

	b.WriteString("## Key Research Questions\n")
	b.WriteString(numberedList(d.KeyQuestions) + "\n\n")

	b.WriteString("## Methodology Approach\n")
	b.WriteString(d.Methodology + "\n\n")

	b.WriteString("## Timeline & Resources\n")
	b.WriteString("**Timeframe**: " + d.Timeframe + "\n")
	b.WriteString("**Required Resources**: " + d.Resources + "\n\n")

	b.WriteString(ExportTrailer)
	return b.String()
}

// FilterListItems returns the entries whose trimmed text is not empty, in order.
// The input is not modified.
func FilterListItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}

func numberedList(items []string) string {
	kept := FilterListItems(items)
	lines := make([]string, 0, len(kept))
	for i, it := range kept {
		lines = append(lines, strconv.Itoa(i+1)+". "+it)
	}
	return strings.Join(lines, "\n")
}
