package services

import "github.com/scmlewis/eatwise-ai-sub000/models"

// ReferenceEntry is one row of the curated per-100g nutrition table.
type ReferenceEntry struct {
	Name      string
	Nutrients models.NutrientVector
}

// nv builds a per-100g vector: kcal, protein g, carbs g, fat g, fiber g,
// sodium mg, sugar g.
func nv(cal, protein, carbs, fat, fiber, sodium, sugar float64) models.NutrientVector {
	return models.NutrientVector{
		Calories: cal,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    fiber,
		Sodium:   sodium,
		Sugar:    sugar,
	}
}

// referenceTable is the static lookup for known foods, keyed by canonical
// lowercase name, values per 100g (USDA-derived approximations). The slice
// keeps a stable insertion order because substring matches are returned in
// table order; referenceIndex serves exact lookups. Loaded once, never
// mutated, safe to share across goroutines.
var referenceTable = []ReferenceEntry{
	// Poultry, meat and eggs
	{"chicken breast", nv(165, 31, 0, 3.6, 0, 74, 0)},
	{"chicken thigh", nv(209, 26, 0, 10.9, 0, 90, 0)},
	{"chicken", nv(190, 27, 0, 8, 0, 82, 0)},
	{"turkey", nv(189, 29, 0, 7, 0, 68, 0)},
	{"duck", nv(337, 19, 0, 28, 0, 59, 0)},
	{"beef", nv(250, 26, 0, 15, 0, 72, 0)},
	{"ground beef", nv(254, 26, 0, 17, 0, 75, 0)},
	{"steak", nv(271, 25, 0, 19, 0, 54, 0)},
	{"pork", nv(242, 27, 0, 14, 0, 62, 0)},
	{"pork chop", nv(231, 25.7, 0, 14, 0, 58, 0)},
	{"bacon", nv(541, 37, 1.4, 42, 0, 1717, 1)},
	{"ham", nv(145, 21, 1.5, 5.5, 0, 1200, 1.2)},
	{"sausage", nv(301, 12, 2.6, 27, 0, 750, 1)},
	{"lamb", nv(294, 25, 0, 21, 0, 72, 0)},
	{"egg", nv(155, 13, 1.1, 11, 0, 124, 1.1)},
	{"egg white", nv(52, 11, 0.7, 0.2, 0, 166, 0.7)},
	{"tofu", nv(76, 8, 1.9, 4.8, 0.3, 7, 0.6)},
	{"tempeh", nv(193, 19, 9, 11, 4.5, 9, 0)},

	// Fish and seafood
	{"salmon", nv(208, 20, 0, 13, 0, 59, 0)},
	{"tuna", nv(132, 28, 0, 1.3, 0, 47, 0)},
	{"cod", nv(82, 18, 0, 0.7, 0, 54, 0)},
	{"tilapia", nv(96, 20, 0, 1.7, 0, 52, 0)},
	{"shrimp", nv(99, 24, 0.2, 0.3, 0, 111, 0)},
	{"sardine", nv(208, 25, 0, 11, 0, 307, 0)},
	{"mackerel", nv(205, 19, 0, 13.9, 0, 83, 0)},
	{"crab", nv(97, 19, 0, 1.5, 0, 395, 0)},

	// Grains and starches
	{"rice", nv(130, 2.7, 28, 0.3, 0.4, 1, 0.1)},
	{"white rice", nv(130, 2.7, 28, 0.3, 0.4, 1, 0.1)},
	{"brown rice", nv(111, 2.6, 23, 0.9, 1.8, 5, 0.4)},
	{"fried rice", nv(163, 4, 28, 3.9, 0.8, 396, 0.7)},
	{"quinoa", nv(120, 4.4, 21.3, 1.9, 2.8, 7, 0.9)},
	{"oats", nv(389, 16.9, 66, 6.9, 10.6, 2, 1)},
	{"oatmeal", nv(71, 2.5, 12, 1.5, 1.7, 4, 0.3)},
	{"bread", nv(265, 9, 49, 3.2, 2.7, 491, 5)},
	{"white bread", nv(266, 8, 50, 3.3, 2.4, 490, 5.1)},
	{"whole wheat bread", nv(247, 13, 41, 3.4, 7, 450, 4.3)},
	{"pasta", nv(131, 5, 25, 1.1, 1.8, 1, 0.6)},
	{"spaghetti", nv(158, 5.8, 30.9, 0.9, 1.8, 1, 0.6)},
	{"noodles", nv(138, 4.5, 25, 2.1, 1.2, 5, 0.4)},
	{"tortilla", nv(218, 6, 36, 5, 2.3, 469, 1.6)},
	{"bagel", nv(250, 10, 49, 1.5, 2.1, 430, 5)},
	{"couscous", nv(112, 3.8, 23, 0.2, 1.4, 5, 0.1)},
	{"barley", nv(123, 2.3, 28, 0.4, 3.8, 3, 0.3)},
	{"corn", nv(86, 3.3, 19, 1.4, 2, 15, 3.2)},
	{"popcorn", nv(387, 13, 78, 4.5, 14.5, 8, 0.9)},
	{"cereal", nv(379, 8, 84, 2.8, 7, 500, 22)},
	{"granola", nv(471, 10, 64, 20, 7, 26, 25)},
	{"crackers", nv(502, 7, 61, 26, 2.5, 698, 8)},
	{"potato", nv(77, 2, 17, 0.1, 2.2, 6, 0.8)},
	{"sweet potato", nv(86, 1.6, 20, 0.1, 3, 55, 4.2)},
	{"french fries", nv(312, 3.4, 41, 15, 3.8, 210, 0.3)},

	// Legumes, nuts and seeds
	{"lentils", nv(116, 9, 20, 0.4, 7.9, 2, 1.8)},
	{"chickpeas", nv(164, 8.9, 27, 2.6, 7.6, 7, 4.8)},
	{"black beans", nv(132, 8.9, 24, 0.5, 8.7, 1, 0.3)},
	{"kidney beans", nv(127, 8.7, 22.8, 0.5, 6.4, 2, 0.3)},
	{"beans", nv(127, 8.7, 22.8, 0.5, 6.4, 2, 0.3)},
	{"peas", nv(81, 5.4, 14, 0.4, 5.7, 5, 5.7)},
	{"edamame", nv(121, 11, 9, 5, 5.2, 6, 2.2)},
	{"hummus", nv(166, 8, 14, 9.6, 6, 379, 0.3)},
	{"peanut butter", nv(588, 25, 20, 50, 6, 17, 9)},
	{"peanuts", nv(567, 26, 16, 49, 8.5, 18, 4)},
	{"almonds", nv(579, 21, 22, 50, 12.5, 1, 4.4)},
	{"walnuts", nv(654, 15, 14, 65, 6.7, 2, 2.6)},
	{"cashews", nv(553, 18, 30, 44, 3.3, 12, 5.9)},
	{"chia seeds", nv(486, 17, 42, 31, 34.4, 16, 0)},

	// Dairy
	{"milk", nv(61, 3.2, 4.8, 3.3, 0, 43, 5.1)},
	{"whole milk", nv(61, 3.2, 4.8, 3.3, 0, 43, 5.1)},
	{"skim milk", nv(34, 3.4, 5, 0.1, 0, 42, 5)},
	{"yogurt", nv(61, 3.5, 4.7, 3.3, 0, 46, 4.7)},
	{"greek yogurt", nv(59, 10, 3.6, 0.4, 0, 36, 3.2)},
	{"cheese", nv(350, 25, 2, 27, 0, 621, 0.5)},
	{"cheddar cheese", nv(403, 25, 1.3, 33, 0, 621, 0.5)},
	{"mozzarella", nv(280, 28, 3.1, 17, 0, 627, 1.2)},
	{"cottage cheese", nv(98, 11, 3.4, 4.3, 0, 364, 2.7)},
	{"cream cheese", nv(342, 6, 4.1, 34, 0, 321, 3.2)},
	{"butter", nv(717, 0.9, 0.1, 81, 0, 11, 0.1)},
	{"cream", nv(340, 2.1, 2.8, 36, 0, 26, 2.9)},
	{"ice cream", nv(207, 3.5, 24, 11, 0.7, 80, 21)},

	// Vegetables
	{"broccoli", nv(34, 2.8, 6.6, 0.4, 2.6, 33, 1.7)},
	{"spinach", nv(23, 2.9, 3.6, 0.4, 2.2, 79, 0.4)},
	{"kale", nv(49, 4.3, 8.8, 0.9, 3.6, 38, 2.3)},
	{"carrot", nv(41, 0.9, 9.6, 0.2, 2.8, 69, 4.7)},
	{"tomato", nv(18, 0.9, 3.9, 0.2, 1.2, 5, 2.6)},
	{"cucumber", nv(15, 0.7, 3.6, 0.1, 0.5, 2, 1.7)},
	{"lettuce", nv(15, 1.4, 2.9, 0.2, 1.3, 28, 0.8)},
	{"onion", nv(40, 1.1, 9.3, 0.1, 1.7, 4, 4.2)},
	{"garlic", nv(149, 6.4, 33, 0.5, 2.1, 17, 1)},
	{"bell pepper", nv(31, 1, 6, 0.3, 2.1, 4, 4.2)},
	{"mushroom", nv(22, 3.1, 3.3, 0.3, 1, 5, 2)},
	{"zucchini", nv(17, 1.2, 3.1, 0.3, 1, 8, 2.5)},
	{"cauliflower", nv(25, 1.9, 5, 0.3, 2, 30, 1.9)},
	{"cabbage", nv(25, 1.3, 5.8, 0.1, 2.5, 18, 3.2)},
	{"green beans", nv(31, 1.8, 7, 0.2, 2.7, 6, 3.3)},
	{"asparagus", nv(20, 2.2, 3.9, 0.1, 2.1, 2, 1.9)},
	{"eggplant", nv(25, 1, 5.9, 0.2, 3, 2, 3.5)},
	{"celery", nv(16, 0.7, 3, 0.2, 1.6, 80, 1.3)},
	{"avocado", nv(160, 2, 8.5, 14.7, 6.7, 7, 0.7)},
	{"ginger", nv(80, 1.8, 18, 0.8, 2, 13, 1.7)},
	{"olive", nv(115, 0.8, 6.3, 10.7, 3.2, 735, 0)},

	// Fruits
	{"apple", nv(52, 0.3, 14, 0.2, 2.4, 1, 10.4)},
	{"banana", nv(89, 1.1, 23, 0.3, 2.6, 1, 12.2)},
	{"orange", nv(47, 0.9, 12, 0.1, 2.4, 0, 9.4)},
	{"strawberry", nv(32, 0.7, 7.7, 0.3, 2, 1, 4.9)},
	{"blueberry", nv(57, 0.7, 14.5, 0.3, 2.4, 1, 10)},
	{"grapes", nv(69, 0.7, 18, 0.2, 0.9, 2, 15.5)},
	{"mango", nv(60, 0.8, 15, 0.4, 1.6, 1, 13.7)},
	{"pineapple", nv(50, 0.5, 13, 0.1, 1.4, 1, 9.9)},
	{"watermelon", nv(30, 0.6, 7.6, 0.2, 0.4, 1, 6.2)},
	{"peach", nv(39, 0.9, 9.5, 0.3, 1.5, 0, 8.4)},
	{"pear", nv(57, 0.4, 15, 0.1, 3.1, 1, 9.8)},
	{"kiwi", nv(61, 1.1, 14.7, 0.5, 3, 3, 9)},
	{"cherry", nv(63, 1.1, 16, 0.2, 2.1, 0, 12.8)},
	{"pomegranate", nv(83, 1.7, 19, 1.2, 4, 3, 13.7)},
	{"raisins", nv(299, 3.1, 79, 0.5, 3.7, 11, 59.2)},
	{"dates", nv(277, 1.8, 75, 0.2, 6.7, 1, 66.5)},

	// Oils, condiments and sweets
	{"olive oil", nv(884, 0, 0, 100, 0, 2, 0)},
	{"vegetable oil", nv(884, 0, 0, 100, 0, 0, 0)},
	{"coconut oil", nv(862, 0, 0, 100, 0, 0, 0)},
	{"mayonnaise", nv(680, 1, 0.6, 75, 0, 635, 0.6)},
	{"ketchup", nv(101, 1.3, 25, 0.1, 0.3, 907, 21.3)},
	{"soy sauce", nv(53, 8, 4.9, 0.6, 0.8, 5493, 0.4)},
	{"honey", nv(304, 0.3, 82, 0, 0.2, 4, 82.1)},
	{"sugar", nv(387, 0, 100, 0, 0, 1, 99.8)},
	{"jam", nv(278, 0.4, 69, 0.1, 1.1, 32, 48.5)},
	{"chocolate", nv(546, 4.9, 61, 31, 7, 24, 47.9)},
	{"dark chocolate", nv(598, 7.8, 46, 43, 10.9, 20, 24.2)},

	// Prepared dishes and drinks
	{"pizza", nv(266, 11, 33, 10, 2.3, 598, 3.6)},
	{"hamburger", nv(295, 17, 24, 14, 1.1, 414, 5)},
	{"orange juice", nv(45, 0.7, 10.4, 0.2, 0.2, 1, 8.4)},
	{"apple juice", nv(46, 0.1, 11.3, 0.1, 0.2, 4, 9.6)},
}

// referenceIndex maps canonical name to its position in referenceTable.
var referenceIndex = buildReferenceIndex()

func buildReferenceIndex() map[string]int {
	idx := make(map[string]int, len(referenceTable))
	for i, e := range referenceTable {
		idx[e.Name] = i
	}
	return idx
}

// ReferenceTableSize reports how many curated foods the engine knows.
func ReferenceTableSize() int {
	return len(referenceTable)
}

// ReferenceEntries returns a copy of the table, in insertion order.
func ReferenceEntries() []ReferenceEntry {
	out := make([]ReferenceEntry, len(referenceTable))
	copy(out, referenceTable)
	return out
}
