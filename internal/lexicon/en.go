package lexicon

import "synapse-go/internal/types"

func english() *Locale {
	return &Locale{
		Code: "en",

		Fillers:             []string{"um", "uh", "like", "you know", "basically", "actually", "kind of", "sort of", "i mean"},
		OpenQuestionMarkers: []string{"how", "why", "what", "which", "when", "where", "tell me", "walk me through", "describe"},
		EmpathyMarkers:      []string{"i understand", "i see", "that makes sense", "i'm sorry", "i imagine", "must be hard", "i hear you"},
		PolitenessMarkers:   []string{"please", "thank you", "thanks", "excuse me", "sorry", "appreciate", "good morning", "good afternoon"},
		ComplianceRiskTerms: []string{"guarantee", "guaranteed", "no risk", "i promise", "never fails", "off the books", "nobody will know", "pregnant", "religion"},

		PositiveWords:   []string{"great", "excellent", "good", "perfect", "happy", "glad", "love", "interesting", "agree", "thanks", "success", "confident", "resolved"},
		NegativeWords:   []string{"bad", "terrible", "problem", "difficult", "unhappy", "upset", "frustrated", "expensive", "worried", "impossible", "complaint", "error", "delay"},
		PositiveContext: []string{"sure", "certainly", "exactly", "absolutely", "great"},
		NegativeContext: []string{"not sure", "maybe", "no idea", "impossible", "i can't", "cannot"},

		VagueNextStep:    []string{"later", "we'll see", "soon", "think about it", "get back to you", "keep in touch"},
		SpecificNextStep: []string{"i will send", "send", "schedule", "book", "meeting", "proposal", "call", "contract", "next step", "next steps"},
		ExampleMarkers:   []string{"for example", "for instance", "such as", "imagine", "let's say"},
		DateMarkers:      []string{"tomorrow", "today", "monday", "tuesday", "wednesday", "thursday", "friday", "next week", "next month", "end of month"},
		MonthNames:       []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"},
		Stopwords:        []string{"that", "this", "with", "have", "about", "your", "what", "when", "where", "which", "there", "their", "would", "could", "should", "just", "very", "from", "they", "them", "here"},

		Areas: map[types.Area]AreaTable{
			types.AreaCommercial: {
				Topics: []Topic{
					{Name: "needs", Keywords: []string{"need", "problem", "challenge", "pain"}},
					{Name: "budget", Keywords: []string{"budget", "price", "investment", "cost"}},
					{Name: "timeline", Keywords: []string{"timeline", "deadline", "when"}},
					{Name: "decision makers", Keywords: []string{"decision maker", "director", "approval"}},
					{Name: "return", Keywords: []string{"roi", "return", "benefit"}},
				},
				Criteria: map[string][]string{
					"rapport":            {"nice to meet", "good morning", "how are you", "thank you"},
					"needs_discovery":    {"need", "challenge", "problem", "goal", "current process", "priority"},
					"value_proposition":  {"benefit", "value", "return", "roi", "savings", "productivity"},
					"objection_handling": {"i understand", "concern", "compared", "alternative", "guarantee", "case study"},
					"closing":            {"next step", "proposal", "contract", "schedule", "meeting", "sign"},
				},
				Resolution:  []string{"solve", "solution", "resolved", "agreement"},
				Decision:    []string{"decided", "decision", "approved", "agreed"},
				ActionItems: []string{"send", "schedule", "prepare", "follow up", "call"},
				NextSteps:   []string{"Practice implication questions to deepen discovery", "Prepare answers to your market's three most common objections"},
			},
			types.AreaHR: {
				Topics: []Topic{
					{Name: "performance", Keywords: []string{"performance", "goal", "result"}},
					{Name: "development", Keywords: []string{"development", "career", "training", "growth"}},
					{Name: "behavior", Keywords: []string{"behavior", "attitude"}},
					{Name: "wellbeing", Keywords: []string{"wellbeing", "health", "stress", "balance"}},
				},
				Criteria: map[string][]string{
					"active_listening":  {"i understand", "if i understood", "you said", "tell me more"},
					"feedback":          {"feedback", "i noticed", "example", "impact", "behavior", "improve"},
					"empathy":           {"i'm sorry", "i imagine", "i'm here", "support"},
					"clarity":           {"goal", "expectation", "clear", "specifically", "in summary"},
					"policy_compliance": {"policy", "rule", "code of conduct", "compliance", "procedure", "confidential"},
				},
				Resolution:  []string{"solve", "solution", "resolved", "clarified"},
				Decision:    []string{"decided", "decision", "agreed"},
				ActionItems: []string{"action plan", "follow up", "schedule", "record"},
				NextSteps:   []string{"Use situation-behavior-impact in your next feedback", "Practice active listening before proposing solutions"},
			},
			types.AreaEducational: {
				Topics: []Topic{
					{Name: "learning goal", Keywords: []string{"goal", "learn", "learning"}},
					{Name: "concept", Keywords: []string{"concept", "definition", "theory"}},
					{Name: "practice", Keywords: []string{"example", "practice", "case"}},
					{Name: "assessment", Keywords: []string{"assessment", "exercise", "test"}},
				},
				Criteria: map[string][]string{
					"explanation":            {"concept", "means", "definition", "for example", "step"},
					"engagement":             {"what do you think", "let's", "try", "practice", "activity"},
					"checking_understanding": {"understand", "is it clear", "any questions", "in your own words"},
					"encouragement":          {"well done", "congratulations", "great", "keep going", "good job"},
				},
				Resolution:  []string{"understood", "clear", "resolved"},
				Decision:    []string{"agreed", "decided"},
				ActionItems: []string{"exercise", "homework", "review", "study", "practice"},
				NextSteps:   []string{"Check understanding after each new concept", "Add a practical example tied to the learner's routine"},
			},
			types.AreaManagement: {
				Topics: []Topic{
					{Name: "goals", Keywords: []string{"goal", "target", "kpi", "metric"}},
					{Name: "priorities", Keywords: []string{"priority", "urgent", "focus"}},
					{Name: "resources", Keywords: []string{"resource", "team", "budget", "tool"}},
					{Name: "deadlines", Keywords: []string{"deadline", "delivery", "timeline"}},
				},
				Criteria: map[string][]string{
					"delegation":          {"delegate", "owner", "autonomy", "i trust", "responsible"},
					"goal_setting":        {"goal", "target", "kpi", "deadline", "measure"},
					"conflict_resolution": {"conflict", "disagreement", "point of view", "agreement", "consensus"},
					"motivation":          {"recognize", "proud", "growth", "opportunity", "appreciate"},
				},
				Resolution:  []string{"solve", "solution", "resolved", "consensus"},
				Decision:    []string{"decided", "decision", "approved"},
				ActionItems: []string{"action plan", "owner", "deliver", "follow up", "review"},
				NextSteps:   []string{"Set goals with metric, owner and deadline", "Practice mediation by hearing both sides first"},
			},
		},
	}
}
