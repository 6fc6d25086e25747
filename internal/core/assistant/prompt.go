package assistant

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// roofingContext is the fixed domain knowledge sent as the system
// instruction with every chat request.
const roofingContext = `You are an AI assistant for a roofing company. You help homeowners with:

1. ROOFING SERVICES:
- Roof repairs (leaks, missing shingles, storm damage)
- Full roof replacements (asphalt, metal, tile, slate)
- Roof inspections and maintenance
- Gutter installation and repair
- Skylight installation
- Chimney repairs
- Emergency roof services

2. COMMON PRICING RANGES:
- Roof inspection: $200-$500
- Minor repairs: $300-$1,500
- Major repairs: $1,500-$7,000
- Full replacement: $8,000-$25,000+ (depends on size, materials)
- Emergency services: $500-$3,000

3. MATERIALS:
- Asphalt shingles: Most common, affordable ($100-$200/square)
- Metal roofing: Durable, energy-efficient ($300-$800/square)
- Tile roofing: Long-lasting, expensive ($300-$600/square)
- Slate: Premium, very expensive ($600-$1,500/square)

4. INSURANCE CLAIMS:
- We work with all major insurance companies
- Storm damage often covered
- We help with claim documentation
- Free insurance claim inspections

5. LEAD QUALIFICATION QUESTIONS:
- What type of roofing issue do you have?
- When did you first notice the problem?
- What's your property address?
- What type of roof do you currently have?
- Have you contacted your insurance company?
- What's your timeline for the work?
- What's your approximate budget range?

Always be helpful, professional, and try to gather contact information to schedule an inspection.`

// systemPrompt renders the domain knowledge plus any visitor details the
// widget has collected so far, as key/value lines.
func systemPrompt(userInfo map[string]string) string {
	if len(userInfo) == 0 {
		return roofingContext
	}

	keys := make([]string, 0, len(userInfo))
	for k, v := range userInfo {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return roofingContext
	}
	sort.Strings(keys)

	title := cases.Title(language.English)
	var b strings.Builder
	b.WriteString(roofingContext)
	b.WriteString("\n\nUser Information:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", title.String(k), userInfo[k])
	}
	return b.String()
}

const preQualifyTemplate = `Analyze this roofing lead and provide a brief pre-qualification assessment:

Name: %s
Phone: %s
Email: %s
Address: %s
Job Type: %s
Description: %s

Provide a 2-3 sentence assessment covering:
1. Lead quality (hot/warm/cold)
2. Estimated project value range
3. Recommended next steps

Keep it concise and actionable for the sales team.`

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
