package game

import "math/rand"

// Word pool for draw mode. All lowercase, 3-12 characters (multi-word
// entries count the space, which always renders as a space in the mask).
var wordsList = []string{
	"apple", "banana", "guitar", "piano", "rocket", "castle", "bridge",
	"dragon", "pirate", "wizard", "spider", "turtle", "rabbit", "donkey",
	"penguin", "dolphin", "octopus", "giraffe", "elephant", "kangaroo",
	"mountain", "volcano", "island", "desert", "forest", "rainbow",
	"tornado", "thunder", "glacier", "lantern", "candle", "mirror",
	"window", "ladder", "hammer", "shovel", "anchor", "compass",
	"telescope", "umbrella", "backpack", "sandwich", "pancake", "popcorn",
	"ice cream", "hot dog", "cupcake", "pretzel", "noodles", "cheese",
	"butterfly", "mosquito", "scorpion", "hedgehog", "squirrel", "raccoon",
	"airplane", "submarine", "tractor", "scooter", "sailboat", "helicopter",
	"football", "baseball", "bowling", "surfing", "skating", "juggling",
	"painter", "plumber", "dentist", "farmer", "pilot", "clown",
	"skeleton", "vampire", "zombie", "robot", "alien", "ghost",
	"crown", "sword", "shield", "arrow", "torch", "treasure",
	"igloo", "tepee", "cabin", "palace", "pyramid", "lighthouse",
	"cactus", "bamboo", "mushroom", "sunflower", "pinecone", "seaweed",
	"snowman", "scarecrow", "mermaid", "unicorn", "centaur", "phoenix",
	"drum", "flute", "violin", "trumpet", "banjo", "harp",
	"key", "map", "net", "web", "egg", "ant",
}

// pickWordChoices returns exactly 3 mutually distinct candidate words.
func pickWordChoices(rng *rand.Rand) []string {
	choices := make([]string, 0, 3)
	seen := make(map[string]bool, 3)
	for len(choices) < 3 {
		w := wordsList[rng.Intn(len(wordsList))]
		if !seen[w] {
			seen[w] = true
			choices = append(choices, w)
		}
	}
	return choices
}
