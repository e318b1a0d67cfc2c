package analysis

import (
	"strings"

	"github.com/vampirenirmal/writecoach/internal/textutil"
)

// IssueCategory groups telling phrases by what they flatten: a feeling, a
// physical state, a character trait, or a reaction.
type IssueCategory string

const (
	CategoryEmotion  IssueCategory = "emotion"
	CategoryState    IssueCategory = "state"
	CategoryTrait    IssueCategory = "trait"
	CategoryReaction IssueCategory = "reaction"
)

// Example is a worked before/after rewrite for one telling phrase.
type Example struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// ShowTellIssue is one located "telling" phrase with showing alternatives.
// Suggestions and Example are shared with the dictionary entry; callers must
// not mutate them.
type ShowTellIssue struct {
	Original    string        `json:"original"`
	Start       int           `json:"start"`
	End         int           `json:"end"`
	Category    IssueCategory `json:"category"`
	Explanation string        `json:"explanation"`
	Suggestions []string      `json:"suggestions"`
	Example     Example       `json:"example"`
}

// ShowTellSummary is the showing/telling balance of a sample.
type ShowTellSummary struct {
	ShowingCount int     `json:"showing_count"`
	TellingCount int     `json:"telling_count"`
	Ratio        float64 `json:"ratio"`
	Assessment   string  `json:"assessment"`
}

type tellingEntry struct {
	phrase      string
	category    IssueCategory
	suggestions []string
	example     Example
}

const tellingExplanation = "This tells the reader directly instead of showing it through action or detail."

var tellingDictionary = []tellingEntry{
	{
		phrase:   "was happy",
		category: CategoryEmotion,
		suggestions: []string{
			"She couldn't stop grinning as she skipped down the hall.",
			"He pumped his fist and let out a whoop.",
			"A warm glow spread through her chest.",
		},
		example: Example{
			Before: "Maya was happy about the news.",
			After:  "Maya spun in a circle, laughing, the letter clutched to her chest.",
		},
	},
	{
		phrase:   "was sad",
		category: CategoryEmotion,
		suggestions: []string{
			"Her shoulders slumped and she stared at the floor.",
			"He blinked hard, trying to keep the tears back.",
			"She traced the edge of the photo with one finger, saying nothing.",
		},
		example: Example{
			Before: "Tom was sad about leaving.",
			After:  "Tom pressed his hand against the window, watching his old street shrink away.",
		},
	},
	{
		phrase:   "was angry",
		category: CategoryEmotion,
		suggestions: []string{
			"His jaw tightened and his hands curled into fists.",
			"She slammed the door hard enough to rattle the pictures.",
			"Heat crept up the back of his neck.",
			"Her voice dropped to a dangerous whisper.",
		},
		example: Example{
			Before: "Dad was angry about the broken vase.",
			After:  "Dad stared at the shards, a muscle working in his jaw.",
		},
	},
	{
		phrase:   "was scared",
		category: CategoryEmotion,
		suggestions: []string{
			"Her heart hammered against her ribs.",
			"He backed toward the door, eyes fixed on the shadow.",
			"Goosebumps prickled along her arms.",
		},
		example: Example{
			Before: "Sam was scared of the dark basement.",
			After:  "Sam froze on the top step, gripping the rail so hard his knuckles went white.",
		},
	},
	{
		phrase:   "was excited",
		category: CategoryEmotion,
		suggestions: []string{
			"She bounced on her toes, checking the clock every few seconds.",
			"He talked so fast the words tumbled over each other.",
			"Her stomach fizzed like a shaken soda.",
		},
		example: Example{
			Before: "Lily was excited about the trip.",
			After:  "Lily had her bag packed three days early and kept rereading the itinerary.",
		},
	},
	{
		phrase:   "felt nervous",
		category: CategoryEmotion,
		suggestions: []string{
			"She twisted the hem of her shirt around her finger.",
			"His mouth went dry and he swallowed twice before speaking.",
			"Her knee bounced under the desk.",
		},
		example: Example{
			Before: "Jake felt nervous before the audition.",
			After:  "Jake paced the hallway, mouthing his lines to the floor tiles.",
		},
	},
	{
		phrase:   "was tired",
		category: CategoryState,
		suggestions: []string{
			"His eyelids drooped and the words on the page blurred together.",
			"She dragged her feet up the stairs, one heavy step at a time.",
			"He yawned so wide his jaw cracked.",
		},
		example: Example{
			Before: "After the hike, Ana was tired.",
			After:  "After the hike, Ana sank onto the porch and couldn't convince her legs to move again.",
		},
	},
	{
		phrase:   "was hungry",
		category: CategoryState,
		suggestions: []string{
			"Her stomach growled loud enough for the whole class to hear.",
			"He eyed the sandwich the way a hawk eyes a field mouse.",
			"She could almost taste the bread from across the room.",
		},
		example: Example{
			Before: "Ben was hungry after practice.",
			After:  "Ben inhaled two sandwiches before his bag even hit the kitchen floor.",
		},
	},
	{
		phrase:   "was cold",
		category: CategoryState,
		suggestions: []string{
			"She hugged her arms and stamped her feet on the frozen ground.",
			"His breath hung in the air in little white clouds.",
			"The chill crept through her coat and settled into her bones.",
		},
		example: Example{
			Before: "It was cold on the mountain.",
			After:  "Frost crusted the tent zipper, and every breath stung going in.",
		},
	},
	{
		phrase:   "was hot",
		category: CategoryState,
		suggestions: []string{
			"Sweat trickled down the back of his neck.",
			"The pavement shimmered, and her shirt stuck to her back.",
			"He fanned himself with his cap, squinting against the glare.",
		},
		example: Example{
			Before: "The afternoon was hot.",
			After:  "The afternoon sun baked the field until even the grasshoppers went quiet.",
		},
	},
	{
		phrase:   "was brave",
		category: CategoryTrait,
		suggestions: []string{
			"She stepped between the bully and the new kid without hesitating.",
			"His hands shook, but he climbed the ladder anyway.",
			"She took a breath and knocked on the principal's door.",
		},
		example: Example{
			Before: "Mia was brave.",
			After:  "Mia waded into the cold creek first, calling back that it wasn't so bad.",
		},
	},
	{
		phrase:   "was kind",
		category: CategoryTrait,
		suggestions: []string{
			"He saved the last seat for the student nobody talked to.",
			"She spent her lunch helping the younger kids find their classroom.",
			"He slipped his spare gloves to the shivering boy without a word.",
		},
		example: Example{
			Before: "Grandma was kind to everyone.",
			After:  "Grandma never let a visitor leave without a sandwich and a story.",
		},
	},
	{
		phrase:   "was smart",
		category: CategoryTrait,
		suggestions: []string{
			"She finished the puzzle while the others were still sorting edge pieces.",
			"He quoted the page number along with the answer.",
			"She spotted the pattern before the teacher finished the question.",
		},
		example: Example{
			Before: "Raj was smart.",
			After:  "Raj fixed the robot with a paperclip and a rubber band while the judges watched.",
		},
	},
	{
		phrase:   "was mean",
		category: CategoryTrait,
		suggestions: []string{
			"He knocked the tray out of her hands and laughed.",
			"She rolled her eyes at every answer the new kid gave.",
			"He never missed a chance to point out a mistake.",
		},
		example: Example{
			Before: "The coach was mean.",
			After:  "The coach made them run laps for smiling during warm-ups.",
		},
	},
	{
		phrase:   "was shy",
		category: CategoryTrait,
		suggestions: []string{
			"She studied her shoes whenever the teacher looked her way.",
			"He answered in a whisper, half-hidden behind his book.",
			"She waited until the room emptied before asking her question.",
		},
		example: Example{
			Before: "Nina was shy at the party.",
			After:  "Nina hovered by the snack table, rehearsing a hello she never said.",
		},
	},
	{
		phrase:   "was surprised",
		category: CategoryReaction,
		suggestions: []string{
			"Her eyebrows shot up and the pencil slipped from her fingers.",
			"He froze with the fork halfway to his mouth.",
			"She read the note twice, then a third time.",
		},
		example: Example{
			Before: "Leo was surprised by the gift.",
			After:  "Leo turned the box over twice, as if the wrapping might explain itself.",
		},
	},
	{
		phrase:   "was shocked",
		category: CategoryReaction,
		suggestions: []string{
			"The glass slipped from her hand and shattered on the tile.",
			"He stood rooted to the spot, mouth opening and closing.",
			"All the color drained from her face.",
		},
		example: Example{
			Before: "Everyone was shocked by the announcement.",
			After:  "The gym went so quiet you could hear the scoreboard buzzing.",
		},
	},
	{
		phrase:   "was confused",
		category: CategoryReaction,
		suggestions: []string{
			"She turned the map upside down, then sideways.",
			"He scratched his head and reread the instructions.",
			"Her brow furrowed as she looked from one twin to the other.",
		},
		example: Example{
			Before: "Omar was confused by the directions.",
			After:  "Omar circled the same block three times, squinting at street signs.",
		},
	},
	{
		phrase:   "was embarrassed",
		category: CategoryReaction,
		suggestions: []string{
			"Her cheeks burned as the laughter spread across the room.",
			"He tugged his cap low and studied the ground.",
			"She wished the floor would open up and swallow her.",
		},
		example: Example{
			Before: "Kim was embarrassed about the spill.",
			After:  "Kim dabbed at the juice stain, not daring to look up from the table.",
		},
	},
	{
		phrase:   "looked sad",
		category: CategoryReaction,
		suggestions: []string{
			"The corners of his mouth pulled down and he turned away.",
			"Her eyes were red-rimmed, her smile not reaching them.",
			"He sat apart from the others, picking at the grass.",
		},
		example: Example{
			Before: "The puppy looked sad in the cage.",
			After:  "The puppy pressed its nose through the bars and whimpered at every passerby.",
		},
	},
}

var showingIndicators = []string{
	"trembled", "grinned", "frowned", "gasped", "whispered", "clenched",
	"shivered", "slumped", "beamed", "winced", "flinched", "sighed",
	"smirked", "stomped", "sobbed",
}

// AnalyzeShowTell scans text for telling phrases and returns one issue per
// whole-word match, in scan order.
func AnalyzeShowTell(text string) []ShowTellIssue {
	lower := strings.ToLower(text)
	var issues []ShowTellIssue
	for i := range tellingDictionary {
		entry := &tellingDictionary[i]
		for at := textutil.FindWord(lower, entry.phrase, 0); at >= 0; at = textutil.FindWord(lower, entry.phrase, at+len(entry.phrase)) {
			issues = append(issues, ShowTellIssue{
				Original:    entry.phrase,
				Start:       at,
				End:         at + len(entry.phrase),
				Category:    entry.category,
				Explanation: tellingExplanation,
				Suggestions: entry.suggestions,
				Example:     entry.example,
			})
		}
	}
	return issues
}

// ShowTellRatio computes the showing/telling balance of text. When no telling
// phrases are present the ratio is the raw showing count.
func ShowTellRatio(text string) ShowTellSummary {
	telling := len(AnalyzeShowTell(text))
	lower := strings.ToLower(text)
	showing := 0
	for _, verb := range showingIndicators {
		for at := textutil.FindWord(lower, verb, 0); at >= 0; at = textutil.FindWord(lower, verb, at+len(verb)) {
			showing++
		}
	}

	ratio := float64(showing)
	if telling > 0 {
		ratio = float64(showing) / float64(telling)
	}

	var assessment string
	switch {
	case ratio >= 3:
		assessment = "excellent"
	case ratio >= 1.5:
		assessment = "good"
	case ratio >= 0.5:
		assessment = "needs_improvement"
	default:
		assessment = "poor"
	}

	return ShowTellSummary{
		ShowingCount: showing,
		TellingCount: telling,
		Ratio:        ratio,
		Assessment:   assessment,
	}
}
