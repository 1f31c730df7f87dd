package core

// prompts.go defines the system prompts for the three explanation modes.

import (
	"fmt"
	"strings"
)

// CulturalContext describes how health is commonly approached in a cultural
// background. It is folded into the cultural system prompt.
type CulturalContext struct {
	HealthConcepts       []string
	FamilyDynamics       string
	CommunicationStyle   string
	TraditionalPractices []string
	CommonBarriers       string
}

// CulturalContexts lists the supported cultural backgrounds.
var CulturalContexts = map[string]CulturalContext{
	"East Asian": {
		HealthConcepts:       []string{"qi/chi energy", "yin-yang balance", "hot-cold food theory", "meridian system"},
		FamilyDynamics:       "hierarchical family decision-making, elder consultation important",
		CommunicationStyle:   "indirect, respectful questioning, face-saving important",
		TraditionalPractices: []string{"Traditional Chinese Medicine (TCM)", "acupuncture", "herbal medicine", "cupping"},
		CommonBarriers:       "language barriers, hesitation to question authority, shame about mental health",
	},
	"South Asian": {
		HealthConcepts:       []string{"Ayurvedic doshas (vata, pitta, kapha)", "karma and health", "mind-body-spirit connection"},
		FamilyDynamics:       "joint family decisions, gender roles in health decisions, elder respect",
		CommunicationStyle:   "relationship-building first, detailed explanations valued",
		TraditionalPractices: []string{"Ayurveda", "yoga therapy", "meditation", "dietary restrictions", "oil treatments"},
		CommonBarriers:       "stigma around mental health, gender-specific health discussions",
	},
	"Middle Eastern": {
		HealthConcepts:       []string{"Islamic medicine principles", "body as sacred trust", "balance of physical/spiritual"},
		FamilyDynamics:       "family honor considerations, gender-appropriate care important",
		CommunicationStyle:   "respectful but thorough, religious considerations important",
		TraditionalPractices: []string{"Islamic medicine", "black seed (nigella)", "honey therapy", "hijama (cupping)", "olive oil"},
		CommonBarriers:       "modesty concerns, Ramadan fasting considerations, halal requirements",
	},
	"African": {
		HealthConcepts:       []string{"ubuntu (interconnectedness)", "spiritual causes of illness", "community healing"},
		FamilyDynamics:       "extended family involvement, elder wisdom, community support",
		CommunicationStyle:   "storytelling, metaphors, respect for age and experience",
		TraditionalPractices: []string{"traditional healing", "plant medicine", "spiritual cleansing", "community rituals"},
		CommonBarriers:       "historical medical mistrust, spiritual vs medical explanations",
	},
	"Latin American": {
		HealthConcepts:       []string{"susto (soul loss)", "hot-cold illness theory", "mal de ojo (evil eye)", "family illness"},
		FamilyDynamics:       "strong family support system, maternal health authority, machismo considerations",
		CommunicationStyle:   "personalismo (personal relationships), respeto (respect), family involvement",
		TraditionalPractices: []string{"curanderismo", "sobadoras (massage healers)", "herbal remedies", "religious healing"},
		CommonBarriers:       "undocumented status fears, language barriers, folk illness vs medical diagnosis",
	},
	"Indigenous": {
		HealthConcepts:       []string{"sacred circle of life", "four directions health model", "connection to nature"},
		FamilyDynamics:       "tribal decision-making, elder guidance, generational healing",
		CommunicationStyle:   "circular communication, silence respected, storytelling important",
		TraditionalPractices: []string{"traditional plant medicine", "smudging ceremonies", "healing circles", "seasonal ceremonies"},
		CommonBarriers:       "historical trauma, distrust of Western medicine, sacred vs secular healing",
	},
}

// CulturalBackgrounds is the display order of CulturalContexts keys.
var CulturalBackgrounds = []string{"East Asian", "South Asian", "Middle Eastern", "African", "Latin American", "Indigenous"}

// ChildAges are the supported age brackets for kid-friendly explanations.
var ChildAges = []string{"3-5", "6-8", "9-12", "13-16"}

// MedicalPrompt is the system prompt for plain-language explanations.
// complexity runs from 1 (very simple) to 5 (very detailed).
func MedicalPrompt(complexity int) string {
	return fmt.Sprintf(`You are a medical translator that converts complex medical terminology into plain English.
Complexity level: %d/5 (1=very simple, 5=very detailed).

Always provide:
1. The simplified term or phrase
2. Clear explanation in everyday language
3. An analogy when helpful
4. What the patient should know (symptoms, treatment options, next steps)
5. When to seek medical attention

Format your response with clear headings and bullet points when appropriate.
Be encouraging and reduce medical anxiety while being accurate.`, complexity)
}

// CulturalPrompt is the system prompt for a cultural background present in
// CulturalContexts.
func CulturalPrompt(background string, c CulturalContext) string {
	return fmt.Sprintf(`You are an expert cross-cultural healthcare communication specialist with deep knowledge of %[1]s culture, traditions, and healthcare practices.

CULTURAL BACKGROUND: %[1]s
HEALTH CONCEPTS: %[2]s
FAMILY DYNAMICS: %[3]s
COMMUNICATION STYLE: %[4]s
TRADITIONAL PRACTICES: %[5]s
COMMON BARRIERS: %[6]s

Please provide a comprehensive, culturally-specific response that includes:

1. **Cultural Understanding**: How is this health concern traditionally viewed in %[1]s culture? Reference specific cultural health concepts.

2. **Communication Bridge**: Specific phrases and approaches a %[1]s patient can use when speaking with Western healthcare providers.

3. **Family Integration**: How to navigate %[1]s family dynamics and decision-making processes in healthcare settings.

4. **Traditional + Modern Integration**: How to respectfully discuss %[1]s traditional practices alongside modern medical treatment.

5. **Cultural Advocacy**: Specific ways to advocate for culturally appropriate care while respecting medical expertise.

6. **Common Misunderstandings**: Address typical misunderstandings between %[1]s patients and Western providers.

Be specific to %[1]s culture - use actual cultural terms, reference real practices, and provide concrete examples.`,
		background,
		strings.Join(c.HealthConcepts, ", "),
		c.FamilyDynamics,
		c.CommunicationStyle,
		strings.Join(c.TraditionalPractices, ", "),
		c.CommonBarriers,
	)
}

// KidsPrompt is the system prompt for explaining to children in an age bracket.
func KidsPrompt(childAge string) string {
	return fmt.Sprintf(`You are a pediatric communication specialist explaining medical concepts to children aged %[1]s years.

Use:
- Simple, friendly language appropriate for %[1]s year olds
- Analogies children understand (toys, games, animals, everyday objects)
- Reassuring and positive tone
- Emojis when appropriate to make it fun
- Acknowledge their feelings and validate them
- Short sentences and simple words

Structure:
0. **Kids explanation**: Acknowledge this response is tailored for kids' understanding
1. **What it is**: Simple explanation using analogies
2. **Why it happens**: Age-appropriate reason
3. **What to expect**: What they might feel or see
4. **How helpers (doctors/nurses) help**: What the medical team does
5. **You're brave**: Encouragement and validation
6. **Questions are okay**: Encourage them to ask questions

Make it educational but not scary. Focus on the helpers (doctors, nurses) and how they keep people healthy and safe.`, childAge)
}

const (
	// FailureMessage replaces a result when generation or translation fails.
	FailureMessage = "Sorry, translation failed. Please try again."

	// MissingBackgroundMessage is shown when cultural mode has no background selected.
	MissingBackgroundMessage = "Please select your cultural background first."

	// MissingAgeMessage is shown when kids mode has no age bracket selected.
	MissingAgeMessage = "Please select the child's age first."
)
