package weight

// defaultProfiles is the built-in produce catalogue, grams per item, bunch or container.
var defaultProfiles = []Profile{
	// Apples (various types)
	{ID: "Apple Braeburn", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Crimson Snow", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Golden 1", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Golden 2", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Golden 3", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Granny Smith", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Apple Pink Lady", MinGrams: 140, TypicalGrams: 170, MaxGrams: 200},
	{ID: "Apple Red 1", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Red 2", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Red 3", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Red Delicious", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Red Yellow 1", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},
	{ID: "Apple Red Yellow 2", MinGrams: 150, TypicalGrams: 180, MaxGrams: 220},

	// Bananas
	{ID: "Banana", MinGrams: 120, TypicalGrams: 150, MaxGrams: 180},
	{ID: "Banana Lady Finger", MinGrams: 80, TypicalGrams: 100, MaxGrams: 120},
	{ID: "Banana Red", MinGrams: 100, TypicalGrams: 130, MaxGrams: 160},

	// Berries
	{ID: "Blueberry", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},     // per container
	{ID: "Strawberry", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},    // per container
	{ID: "Strawberry Wedge", MinGrams: 10, TypicalGrams: 15, MaxGrams: 20}, // per piece
	{ID: "Raspberry", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},     // per container

	// Citrus
	{ID: "Grapefruit Pink", MinGrams: 200, TypicalGrams: 300, MaxGrams: 450},
	{ID: "Grapefruit White", MinGrams: 200, TypicalGrams: 300, MaxGrams: 450},
	{ID: "Lemon", MinGrams: 80, TypicalGrams: 120, MaxGrams: 150},
	{ID: "Lemon Meyer", MinGrams: 70, TypicalGrams: 100, MaxGrams: 130},
	{ID: "Limes", MinGrams: 60, TypicalGrams: 90, MaxGrams: 120},
	{ID: "Mandarine", MinGrams: 60, TypicalGrams: 90, MaxGrams: 120},
	{ID: "Orange", MinGrams: 120, TypicalGrams: 180, MaxGrams: 250},

	// Stone fruits
	{ID: "Apricot", MinGrams: 30, TypicalGrams: 50, MaxGrams: 70},
	{ID: "Avocado", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Avocado ripe", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Cherry 1", MinGrams: 5, TypicalGrams: 8, MaxGrams: 12},          // per piece
	{ID: "Cherry 2", MinGrams: 5, TypicalGrams: 8, MaxGrams: 12},          // per piece
	{ID: "Cherry Rainier", MinGrams: 5, TypicalGrams: 8, MaxGrams: 12},    // per piece
	{ID: "Cherry Wax Black", MinGrams: 5, TypicalGrams: 8, MaxGrams: 12},  // per piece
	{ID: "Cherry Wax Red", MinGrams: 5, TypicalGrams: 8, MaxGrams: 12},    // per piece
	{ID: "Cherry Wax Yellow", MinGrams: 5, TypicalGrams: 8, MaxGrams: 12}, // per piece
	{ID: "Peach", MinGrams: 120, TypicalGrams: 160, MaxGrams: 200},
	{ID: "Peach 2", MinGrams: 120, TypicalGrams: 160, MaxGrams: 200},
	{ID: "Peach Flat", MinGrams: 100, TypicalGrams: 140, MaxGrams: 180},
	{ID: "Plum", MinGrams: 60, TypicalGrams: 90, MaxGrams: 120},
	{ID: "Plum 2", MinGrams: 60, TypicalGrams: 90, MaxGrams: 120},
	{ID: "Plum 3", MinGrams: 60, TypicalGrams: 90, MaxGrams: 120},
	{ID: "Nectarine", MinGrams: 120, TypicalGrams: 150, MaxGrams: 180},
	{ID: "Nectarine Flat", MinGrams: 100, TypicalGrams: 130, MaxGrams: 160},

	// Tropical fruits
	{ID: "Mango", MinGrams: 200, TypicalGrams: 350, MaxGrams: 500},
	{ID: "Mango Red", MinGrams: 200, TypicalGrams: 350, MaxGrams: 500},
	{ID: "Papaya", MinGrams: 400, TypicalGrams: 700, MaxGrams: 1000},
	{ID: "Passion Fruit", MinGrams: 30, TypicalGrams: 50, MaxGrams: 70},
	{ID: "Pineapple", MinGrams: 800, TypicalGrams: 1200, MaxGrams: 1800},
	{ID: "Pineapple Mini", MinGrams: 400, TypicalGrams: 600, MaxGrams: 800},
	{ID: "Pomegranate", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},

	// Melons
	{ID: "Cantaloupe 1", MinGrams: 800, TypicalGrams: 1200, MaxGrams: 1600},
	{ID: "Cantaloupe 2", MinGrams: 800, TypicalGrams: 1200, MaxGrams: 1600},
	{ID: "Watermelon", MinGrams: 3000, TypicalGrams: 5000, MaxGrams: 8000},

	// Grapes
	{ID: "Grape Blue", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400}, // per bunch
	{ID: "Grape Pink", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},
	{ID: "Grape White", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},
	{ID: "Grape White 2", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},
	{ID: "Grape White 3", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},
	{ID: "Grape White 4", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},

	// Other fruits
	{ID: "Guava", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},
	{ID: "Kiwi", MinGrams: 60, TypicalGrams: 90, MaxGrams: 120},
	{ID: "Kumquats", MinGrams: 15, TypicalGrams: 20, MaxGrams: 30},
	{ID: "Lychee", MinGrams: 15, TypicalGrams: 20, MaxGrams: 25},
	{ID: "Pear", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Pear 2", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Pear Abate", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Pear Forelle", MinGrams: 120, TypicalGrams: 160, MaxGrams: 200},
	{ID: "Pear Kaiser", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Pear Monster", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},
	{ID: "Pear Red", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Pear Stone", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Pear Williams", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Quince", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},

	// Vegetables - Peppers
	{ID: "Pepper Green", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Pepper Orange", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Pepper Red", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Pepper Yellow", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},

	// Vegetables - Tomatoes
	{ID: "Tomato 1", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},
	{ID: "Tomato 2", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},
	{ID: "Tomato 3", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},
	{ID: "Tomato 4", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},
	{ID: "Tomato Cherry Red", MinGrams: 15, TypicalGrams: 20, MaxGrams: 25},
	{ID: "Tomato Heart", MinGrams: 150, TypicalGrams: 200, MaxGrams: 250},
	{ID: "Tomato Maroon", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},
	{ID: "Tomato not Ripened", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},
	{ID: "Tomato Yellow", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},

	// Other vegetables
	{ID: "Cactus fruit", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},
	{ID: "Carambula", MinGrams: 80, TypicalGrams: 120, MaxGrams: 160},
	{ID: "Cauliflower", MinGrams: 500, TypicalGrams: 800, MaxGrams: 1200},
	{ID: "Cocos", MinGrams: 300, TypicalGrams: 500, MaxGrams: 800},
	{ID: "Corn", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},
	{ID: "Corn Husk", MinGrams: 200, TypicalGrams: 300, MaxGrams: 400},
	{ID: "Cucumber Ripe", MinGrams: 200, TypicalGrams: 350, MaxGrams: 500},
	{ID: "Cucumber Ripe 2", MinGrams: 200, TypicalGrams: 350, MaxGrams: 500},
	{ID: "Dates", MinGrams: 5, TypicalGrams: 8, MaxGrams: 12}, // per piece
	{ID: "Eggplant", MinGrams: 200, TypicalGrams: 400, MaxGrams: 600},
	{ID: "Ginger Root", MinGrams: 50, TypicalGrams: 100, MaxGrams: 150},
	{ID: "Granadilla", MinGrams: 40, TypicalGrams: 60, MaxGrams: 80},
	{ID: "Kohlrabi", MinGrams: 200, TypicalGrams: 350, MaxGrams: 500},
	{ID: "Onion Red", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Onion Red Peeled", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Onion White", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Potato Red", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Potato Red Washed", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Potato Sweet", MinGrams: 150, TypicalGrams: 250, MaxGrams: 350},
	{ID: "Potato White", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Redded Radish", MinGrams: 30, TypicalGrams: 50, MaxGrams: 70},
	{ID: "Salak", MinGrams: 40, TypicalGrams: 60, MaxGrams: 80},
	{ID: "Tamarillo", MinGrams: 50, TypicalGrams: 80, MaxGrams: 110},
	{ID: "Tangelo", MinGrams: 100, TypicalGrams: 150, MaxGrams: 200},
	{ID: "Walnut", MinGrams: 10, TypicalGrams: 15, MaxGrams: 20},      // per piece
	{ID: "Walnut Peeled", MinGrams: 5, TypicalGrams: 8, MaxGrams: 12}, // per piece

	// Nuts
	{ID: "Chestnut", MinGrams: 10, TypicalGrams: 15, MaxGrams: 20},
	{ID: "Hazelnut", MinGrams: 3, TypicalGrams: 5, MaxGrams: 8},
	{ID: "Hazelnut Peeled", MinGrams: 2, TypicalGrams: 3, MaxGrams: 5},
	{ID: "Nut Forest", MinGrams: 5, TypicalGrams: 8, MaxGrams: 12},
	{ID: "Nut Pecan", MinGrams: 8, TypicalGrams: 12, MaxGrams: 16},
}
