// Package bank holds the static personality question bank: 30 Likert
// trait-scale items (six per Big Five category) and 20 archetype-choice
// items. The bank is fixed at process start and shared read-only between
// engine instances; scoring for a given answer set is reproducible only as
// long as ids and option scores stay unchanged.
package bank

import "careernav/internal/model"

var likertScale = []string{
	"Completely disagree",
	"Rather disagree",
	"Hard to say",
	"Rather agree",
	"Completely agree",
}

// likert builds a trait-scale question, options scored 1..5 in agreement order
func likert(id string, cat model.TraitCategory, text string) model.Question {
	opts := make([]model.Option, len(likertScale))
	for i, t := range likertScale {
		opts[i] = model.Option{Text: t, Score: i + 1}
	}
	return model.Question{ID: id, Category: cat, Kind: model.QuestionKindTraitScale, Text: text, Options: opts}
}

// likertReversed builds a negatively worded trait-scale question. The
// reversal is baked into the option scores (5..1), so aggregation never needs
// a reverse flag.
func likertReversed(id string, cat model.TraitCategory, text string) model.Question {
	opts := make([]model.Option, len(likertScale))
	for i, t := range likertScale {
		opts[i] = model.Option{Text: t, Score: len(likertScale) - i}
	}
	return model.Question{ID: id, Category: cat, Kind: model.QuestionKindTraitScale, Text: text, Options: opts}
}

func choice(text string, a model.Archetype) model.Option {
	return model.Option{Text: text, Archetype: a}
}

func archetype(id, text string, options ...model.Option) model.Question {
	return model.Question{ID: id, Category: model.CategoryArchetype, Kind: model.QuestionKindArchetype, Text: text, Options: options}
}

// Questions is the full ordered bank. Trait items first, archetype items
// after, matching the order the test presents them in.
var Questions = []model.Question{
	// Openness
	likert("o1", model.TraitOpenness, "I enjoy learning things that have no immediate practical use."),
	likert("o2", model.TraitOpenness, "I often come up with ideas that others find unusual."),
	likertReversed("o3", model.TraitOpenness, "I prefer familiar routines over trying something new."),
	likert("o4", model.TraitOpenness, "Art, music or literature can move me deeply."),
	likertReversed("o5", model.TraitOpenness, "Abstract discussions bore me."),
	likert("o6", model.TraitOpenness, "I like to question the way things have always been done."),

	// Conscientiousness
	likert("c1", model.TraitConscientiousness, "I finish what I start, even when it gets tedious."),
	likert("c2", model.TraitConscientiousness, "I plan my work in advance rather than improvising."),
	likertReversed("c3", model.TraitConscientiousness, "I often leave things until the last moment."),
	likert("c4", model.TraitConscientiousness, "People can rely on me to keep my promises."),
	likertReversed("c5", model.TraitConscientiousness, "My workspace is usually a mess."),
	likert("c6", model.TraitConscientiousness, "I double-check my work before calling it done."),

	// Extraversion
	likert("e1", model.TraitExtraversion, "I feel energized after spending time in a large group."),
	likert("e2", model.TraitExtraversion, "I find it easy to start a conversation with a stranger."),
	likertReversed("e3", model.TraitExtraversion, "I need a lot of time alone to recover after socializing."),
	likert("e4", model.TraitExtraversion, "I like being the center of attention."),
	likertReversed("e5", model.TraitExtraversion, "I keep quiet in meetings unless asked directly."),
	likert("e6", model.TraitExtraversion, "I prefer working in a team to working alone."),

	// Agreeableness
	likert("a1", model.TraitAgreeableness, "I find it easy to see things from another person's point of view."),
	likert("a2", model.TraitAgreeableness, "Helping others matters more to me than winning."),
	likertReversed("a3", model.TraitAgreeableness, "I can be blunt even when it hurts someone's feelings."),
	likert("a4", model.TraitAgreeableness, "I trust people until they give me a reason not to."),
	likertReversed("a5", model.TraitAgreeableness, "I enjoy a good argument more than a compromise."),
	likert("a6", model.TraitAgreeableness, "Colleagues come to me when they need support."),

	// Neuroticism
	likert("n1", model.TraitNeuroticism, "I worry about things that might go wrong."),
	likert("n2", model.TraitNeuroticism, "Criticism stays on my mind for a long time."),
	likertReversed("n3", model.TraitNeuroticism, "I stay calm under pressure."),
	likert("n4", model.TraitNeuroticism, "My mood can change quickly over small things."),
	likertReversed("n5", model.TraitNeuroticism, "It takes a lot to make me lose my temper."),
	likert("n6", model.TraitNeuroticism, "Before an important event I find it hard to sleep."),

	// Archetype items
	archetype("ar1", "A project at work is failing. What is your first instinct?",
		choice("Take charge and push it through", model.ArchetypeHero),
		choice("Rethink the approach from scratch", model.ArchetypeCreator),
		choice("Analyze what went wrong before acting", model.ArchetypeSage),
		choice("Look for an entirely different direction", model.ArchetypeExplorer)),
	archetype("ar2", "Which role do you naturally take in a new team?",
		choice("The one who sets the rules and structure", model.ArchetypeRuler),
		choice("The one who makes sure everyone is okay", model.ArchetypeCaregiver),
		choice("The one who keeps the mood light", model.ArchetypeJester),
		choice("The one who connects people to each other", model.ArchetypeLover)),
	archetype("ar3", "What kind of stories do you enjoy most?",
		choice("An underdog overcoming the odds", model.ArchetypeHero),
		choice("A mystery slowly unraveled", model.ArchetypeSage),
		choice("A journey into the unknown", model.ArchetypeExplorer),
		choice("A rebel challenging the system", model.ArchetypeOutlaw)),
	archetype("ar4", "Your ideal weekend looks like:",
		choice("Building or making something with my hands", model.ArchetypeCreator),
		choice("A trip somewhere I have never been", model.ArchetypeExplorer),
		choice("A quiet day with books or documentaries", model.ArchetypeSage),
		choice("Time with the people closest to me", model.ArchetypeLover)),
	archetype("ar5", "What do you want colleagues to say about you?",
		choice("You can always count on them", model.ArchetypeEveryman),
		choice("They see what others miss", model.ArchetypeMagician),
		choice("They never give up", model.ArchetypeHero),
		choice("They keep things honest and simple", model.ArchetypeInnocent)),
	archetype("ar6", "Rules that make no sense should be:",
		choice("Changed through the proper channels", model.ArchetypeRuler),
		choice("Ignored when they get in the way", model.ArchetypeOutlaw),
		choice("Questioned until someone explains them", model.ArchetypeSage),
		choice("Tolerated, rules keep the peace", model.ArchetypeInnocent)),
	archetype("ar7", "When a friend is in trouble, you:",
		choice("Drop everything and help", model.ArchetypeCaregiver),
		choice("Help them see the situation clearly", model.ArchetypeSage),
		choice("Cheer them up first, solve later", model.ArchetypeJester),
		choice("Stand up for them no matter what", model.ArchetypeHero)),
	archetype("ar8", "Which compliment pleases you most?",
		choice("\"You are so inventive\"", model.ArchetypeCreator),
		choice("\"You make everything fun\"", model.ArchetypeJester),
		choice("\"You really understand people\"", model.ArchetypeLover),
		choice("\"You are one of us\"", model.ArchetypeEveryman)),
	archetype("ar9", "A perfect job would let you:",
		choice("Transform how things are done", model.ArchetypeMagician),
		choice("Lead and take responsibility", model.ArchetypeRuler),
		choice("Discover new places and ideas", model.ArchetypeExplorer),
		choice("Care for those who need it", model.ArchetypeCaregiver)),
	archetype("ar10", "What frightens you most?",
		choice("Being ordinary", model.ArchetypeOutlaw),
		choice("Being powerless", model.ArchetypeRuler),
		choice("Being deceived", model.ArchetypeInnocent),
		choice("Being alone", model.ArchetypeLover)),
	archetype("ar11", "In a heated argument you usually:",
		choice("Defuse it with a joke", model.ArchetypeJester),
		choice("Look for the fair middle ground", model.ArchetypeEveryman),
		choice("Defend the weaker side", model.ArchetypeHero),
		choice("Say what nobody else dares to", model.ArchetypeOutlaw)),
	archetype("ar12", "Which achievement would mean the most?",
		choice("Inventing something people use every day", model.ArchetypeCreator),
		choice("Writing a book that changes minds", model.ArchetypeSage),
		choice("Raising a happy family", model.ArchetypeCaregiver),
		choice("Building a company from nothing", model.ArchetypeMagician)),
	archetype("ar13", "Faced with a strict deadline, you:",
		choice("Organize the team and assign tasks", model.ArchetypeRuler),
		choice("Find a shortcut nobody thought of", model.ArchetypeMagician),
		choice("Just put your head down and grind", model.ArchetypeEveryman),
		choice("Trust that it will work out", model.ArchetypeInnocent)),
	archetype("ar14", "Your friends value you for:",
		choice("Loyalty", model.ArchetypeLover),
		choice("Optimism", model.ArchetypeInnocent),
		choice("Humor", model.ArchetypeJester),
		choice("Adventurousness", model.ArchetypeExplorer)),
	archetype("ar15", "Choose a motto:",
		choice("Where there is a will, there is a way", model.ArchetypeHero),
		choice("Knowledge is power", model.ArchetypeSage),
		choice("Rules are meant to be broken", model.ArchetypeOutlaw),
		choice("We are all in this together", model.ArchetypeEveryman)),
	archetype("ar16", "A blank sheet of paper makes you want to:",
		choice("Sketch an idea", model.ArchetypeCreator),
		choice("Plan next month", model.ArchetypeRuler),
		choice("Write a letter to someone dear", model.ArchetypeLover),
		choice("Fold it into a plane", model.ArchetypeJester)),
	archetype("ar17", "Moving to a new city feels like:",
		choice("An adventure I have been waiting for", model.ArchetypeExplorer),
		choice("A chance to reinvent myself", model.ArchetypeMagician),
		choice("A loss of the people I leave behind", model.ArchetypeCaregiver),
		choice("A practical matter of logistics", model.ArchetypeEveryman)),
	archetype("ar18", "The best teacher you ever had:",
		choice("Believed in you when nobody else did", model.ArchetypeCaregiver),
		choice("Made you see the world differently", model.ArchetypeMagician),
		choice("Demanded more than you thought possible", model.ArchetypeRuler),
		choice("Turned every lesson into a story", model.ArchetypeJester)),
	archetype("ar19", "When you buy a gadget, you:",
		choice("Read every review and comparison first", model.ArchetypeSage),
		choice("Pick the newest, most unusual one", model.ArchetypeCreator),
		choice("Buy what your friends recommend", model.ArchetypeEveryman),
		choice("Take the simple one that just works", model.ArchetypeInnocent)),
	archetype("ar20", "What should people remember you for?",
		choice("The battles you won", model.ArchetypeHero),
		choice("The freedom you lived by", model.ArchetypeOutlaw),
		choice("The love you gave", model.ArchetypeLover),
		choice("The worlds you explored", model.ArchetypeExplorer)),
}

var byID = func() map[string]*model.Question {
	m := make(map[string]*model.Question, len(Questions))
	for i := range Questions {
		m[Questions[i].ID] = &Questions[i]
	}
	return m
}()

// Get returns the question with the given id, or nil if unknown
func Get(id string) *model.Question {
	return byID[id]
}

// Count returns the total number of questions in the bank
func Count() int {
	return len(Questions)
}
