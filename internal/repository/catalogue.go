package repository

// defaultCatalogue is seeded into an empty products table. Prices are PLN per kg.
var defaultCatalogue = []Product{
	// Apples (Jabłka) - 4-8 PLN/kg
	{Name: "Apple Braeburn", NamePolish: "Jabłko Braeburn", Category: "Owoce", PricePerKg: 7.5},
	{Name: "Apple Crimson Snow", NamePolish: "Jabłko Crimson Snow", Category: "Owoce", PricePerKg: 8},
	{Name: "Apple Golden 1", NamePolish: "Jabłko Golden", Category: "Owoce", PricePerKg: 5.5},
	{Name: "Apple Golden 2", NamePolish: "Jabłko Golden", Category: "Owoce", PricePerKg: 5.5},
	{Name: "Apple Golden 3", NamePolish: "Jabłko Golden", Category: "Owoce", PricePerKg: 5.5},
	{Name: "Apple Granny Smith", NamePolish: "Jabłko Granny Smith", Category: "Owoce", PricePerKg: 7},
	{Name: "Apple Pink Lady", NamePolish: "Jabłko Pink Lady", Category: "Owoce", PricePerKg: 9},
	{Name: "Apple Red 1", NamePolish: "Jabłko czerwone", Category: "Owoce", PricePerKg: 6},
	{Name: "Apple Red 2", NamePolish: "Jabłko czerwone", Category: "Owoce", PricePerKg: 6},
	{Name: "Apple Red 3", NamePolish: "Jabłko czerwone", Category: "Owoce", PricePerKg: 6},
	{Name: "Apple Red Delicious", NamePolish: "Jabłko Red Delicious", Category: "Owoce", PricePerKg: 7.5},
	{Name: "Apple Red Yellow 1", NamePolish: "Jabłko czerwono-żółte", Category: "Owoce", PricePerKg: 6.5},
	{Name: "Apple Red Yellow 2", NamePolish: "Jabłko czerwono-żółte", Category: "Owoce", PricePerKg: 6.5},

	// Bananas (Banany) - 5-7 PLN/kg
	{Name: "Banana", NamePolish: "Banan", Category: "Owoce", PricePerKg: 5.5},
	{Name: "Banana Lady Finger", NamePolish: "Banan Lady Finger", Category: "Owoce", PricePerKg: 8},
	{Name: "Banana Red", NamePolish: "Banan czerwony", Category: "Owoce", PricePerKg: 12},

	// Berries (Jagody) - 15-35 PLN/kg
	{Name: "Blueberry", NamePolish: "Borówka", Category: "Owoce", PricePerKg: 28},
	{Name: "Strawberry", NamePolish: "Truskawka", Category: "Owoce", PricePerKg: 18},
	{Name: "Strawberry Wedge", NamePolish: "Truskawka (kawałek)", Category: "Owoce", PricePerKg: 18},
	{Name: "Raspberry", NamePolish: "Malina", Category: "Owoce", PricePerKg: 32},

	// Citrus (Cytrusy) - 5-10 PLN/kg
	{Name: "Grapefruit Pink", NamePolish: "Grejpfrut różowy", Category: "Owoce", PricePerKg: 8},
	{Name: "Grapefruit White", NamePolish: "Grejpfrut biały", Category: "Owoce", PricePerKg: 7.5},
	{Name: "Lemon", NamePolish: "Cytryna", Category: "Owoce", PricePerKg: 8.5},
	{Name: "Lemon Meyer", NamePolish: "Cytryna Meyer", Category: "Owoce", PricePerKg: 12},
	{Name: "Limes", NamePolish: "Limonka", Category: "Owoce", PricePerKg: 15},
	{Name: "Mandarine", NamePolish: "Mandarynka", Category: "Owoce", PricePerKg: 7},
	{Name: "Orange", NamePolish: "Pomarańcza", Category: "Owoce", PricePerKg: 6},

	// Stone fruits (Owoce pestkowe) - 8-15 PLN/kg
	{Name: "Apricot", NamePolish: "Morela", Category: "Owoce", PricePerKg: 12},
	{Name: "Avocado", NamePolish: "Awokado", Category: "Owoce", PricePerKg: 18},
	{Name: "Avocado ripe", NamePolish: "Awokado dojrzałe", Category: "Owoce", PricePerKg: 18},
	{Name: "Cherry 1", NamePolish: "Czereśnia", Category: "Owoce", PricePerKg: 25},
	{Name: "Cherry 2", NamePolish: "Czereśnia", Category: "Owoce", PricePerKg: 25},
	{Name: "Cherry Rainier", NamePolish: "Czereśnia Rainier", Category: "Owoce", PricePerKg: 35},
	{Name: "Cherry Wax Black", NamePolish: "Czereśnia czarna", Category: "Owoce", PricePerKg: 28},
	{Name: "Cherry Wax Red", NamePolish: "Czereśnia czerwona", Category: "Owoce", PricePerKg: 25},
	{Name: "Cherry Wax Yellow", NamePolish: "Czereśnia żółta", Category: "Owoce", PricePerKg: 30},
	{Name: "Peach", NamePolish: "Brzoskwinia", Category: "Owoce", PricePerKg: 10},
	{Name: "Peach 2", NamePolish: "Brzoskwinia", Category: "Owoce", PricePerKg: 10},
	{Name: "Peach Flat", NamePolish: "Brzoskwinia płaska", Category: "Owoce", PricePerKg: 12},
	{Name: "Plum", NamePolish: "Śliwka", Category: "Owoce", PricePerKg: 8},
	{Name: "Plum 2", NamePolish: "Śliwka", Category: "Owoce", PricePerKg: 8},
	{Name: "Plum 3", NamePolish: "Śliwka", Category: "Owoce", PricePerKg: 8},
	{Name: "Nectarine", NamePolish: "Nektarynka", Category: "Owoce", PricePerKg: 11},
	{Name: "Nectarine Flat", NamePolish: "Nektarynka płaska", Category: "Owoce", PricePerKg: 13},

	// Tropical fruits (Owoce tropikalne) - 10-25 PLN/kg
	{Name: "Mango", NamePolish: "Mango", Category: "Owoce", PricePerKg: 16},
	{Name: "Mango Red", NamePolish: "Mango czerwone", Category: "Owoce", PricePerKg: 18},
	{Name: "Papaya", NamePolish: "Papaja", Category: "Owoce", PricePerKg: 20},
	{Name: "Passion Fruit", NamePolish: "Marakuja", Category: "Owoce", PricePerKg: 45},
	{Name: "Pineapple", NamePolish: "Ananas", Category: "Owoce", PricePerKg: 8},
	{Name: "Pineapple Mini", NamePolish: "Ananas mini", Category: "Owoce", PricePerKg: 12},
	{Name: "Pomegranate", NamePolish: "Granat", Category: "Owoce", PricePerKg: 15},

	// Melons (Melony) - 3-6 PLN/kg
	{Name: "Cantaloupe 1", NamePolish: "Melon Kantalupa", Category: "Owoce", PricePerKg: 5.5},
	{Name: "Cantaloupe 2", NamePolish: "Melon Kantalupa", Category: "Owoce", PricePerKg: 5.5},
	{Name: "Watermelon", NamePolish: "Arbuz", Category: "Owoce", PricePerKg: 3.5},

	// Grapes (Winogrona) - 8-15 PLN/kg
	{Name: "Grape Blue", NamePolish: "Winogrona niebieskie", Category: "Owoce", PricePerKg: 12},
	{Name: "Grape Pink", NamePolish: "Winogrona różowe", Category: "Owoce", PricePerKg: 14},
	{Name: "Grape White", NamePolish: "Winogrona białe", Category: "Owoce", PricePerKg: 10},
	{Name: "Grape White 2", NamePolish: "Winogrona białe", Category: "Owoce", PricePerKg: 10},
	{Name: "Grape White 3", NamePolish: "Winogrona białe", Category: "Owoce", PricePerKg: 10},
	{Name: "Grape White 4", NamePolish: "Winogrona białe", Category: "Owoce", PricePerKg: 10},

	// Other fruits (Inne owoce) - 6-12 PLN/kg
	{Name: "Guava", NamePolish: "Guawa", Category: "Owoce", PricePerKg: 22},
	{Name: "Kiwi", NamePolish: "Kiwi", Category: "Owoce", PricePerKg: 10},
	{Name: "Kumquats", NamePolish: "Kumkwat", Category: "Owoce", PricePerKg: 35},
	{Name: "Lychee", NamePolish: "Liczi", Category: "Owoce", PricePerKg: 40},
	{Name: "Pear", NamePolish: "Gruszka", Category: "Owoce", PricePerKg: 7},
	{Name: "Pear 2", NamePolish: "Gruszka", Category: "Owoce", PricePerKg: 7},
	{Name: "Pear Abate", NamePolish: "Gruszka Abate", Category: "Owoce", PricePerKg: 8.5},
	{Name: "Pear Forelle", NamePolish: "Gruszka Forelle", Category: "Owoce", PricePerKg: 9},
	{Name: "Pear Kaiser", NamePolish: "Gruszka Kaiser", Category: "Owoce", PricePerKg: 8},
	{Name: "Pear Monster", NamePolish: "Gruszka Monster", Category: "Owoce", PricePerKg: 10},
	{Name: "Pear Red", NamePolish: "Gruszka czerwona", Category: "Owoce", PricePerKg: 9.5},
	{Name: "Pear Stone", NamePolish: "Gruszka Stone", Category: "Owoce", PricePerKg: 7.5},
	{Name: "Pear Williams", NamePolish: "Gruszka Williams", Category: "Owoce", PricePerKg: 8.5},
	{Name: "Quince", NamePolish: "Pigwa", Category: "Owoce", PricePerKg: 6},

	// Vegetables - Peppers (Papryka) - 8-15 PLN/kg
	{Name: "Pepper Green", NamePolish: "Papryka zielona", Category: "Warzywa", PricePerKg: 9},
	{Name: "Pepper Orange", NamePolish: "Papryka pomarańczowa", Category: "Warzywa", PricePerKg: 12},
	{Name: "Pepper Red", NamePolish: "Papryka czerwona", Category: "Warzywa", PricePerKg: 12},
	{Name: "Pepper Yellow", NamePolish: "Papryka żółta", Category: "Warzywa", PricePerKg: 12},

	// Vegetables - Tomatoes (Pomidory) - 6-12 PLN/kg
	{Name: "Tomato 1", NamePolish: "Pomidor", Category: "Warzywa", PricePerKg: 8},
	{Name: "Tomato 2", NamePolish: "Pomidor", Category: "Warzywa", PricePerKg: 8},
	{Name: "Tomato 3", NamePolish: "Pomidor", Category: "Warzywa", PricePerKg: 8},
	{Name: "Tomato 4", NamePolish: "Pomidor", Category: "Warzywa", PricePerKg: 8},
	{Name: "Tomato Cherry Red", NamePolish: "Pomidor koktajlowy", Category: "Warzywa", PricePerKg: 15},
	{Name: "Tomato Heart", NamePolish: "Pomidor malinowy", Category: "Warzywa", PricePerKg: 14},
	{Name: "Tomato Maroon", NamePolish: "Pomidor bordowy", Category: "Warzywa", PricePerKg: 10},
	{Name: "Tomato not Ripened", NamePolish: "Pomidor niedojrzały", Category: "Warzywa", PricePerKg: 7},
	{Name: "Tomato Yellow", NamePolish: "Pomidor żółty", Category: "Warzywa", PricePerKg: 12},

	// Other vegetables (Inne warzywa) - 3-10 PLN/kg
	{Name: "Cactus fruit", NamePolish: "Owoc kaktusa", Category: "Owoce", PricePerKg: 25},
	{Name: "Carambula", NamePolish: "Karambola", Category: "Owoce", PricePerKg: 30},
	{Name: "Cauliflower", NamePolish: "Kalafior", Category: "Warzywa", PricePerKg: 6},
	{Name: "Cocos", NamePolish: "Kokos", Category: "Owoce", PricePerKg: 8},
	{Name: "Corn", NamePolish: "Kukurydza", Category: "Warzywa", PricePerKg: 4.5},
	{Name: "Corn Husk", NamePolish: "Kukurydza w liściach", Category: "Warzywa", PricePerKg: 4.5},
	{Name: "Cucumber Ripe", NamePolish: "Ogórek", Category: "Warzywa", PricePerKg: 5.5},
	{Name: "Cucumber Ripe 2", NamePolish: "Ogórek", Category: "Warzywa", PricePerKg: 5.5},
	{Name: "Dates", NamePolish: "Daktyl", Category: "Owoce", PricePerKg: 35},
	{Name: "Eggplant", NamePolish: "Bakłażan", Category: "Warzywa", PricePerKg: 8},
	{Name: "Ginger Root", NamePolish: "Imbir", Category: "Warzywa", PricePerKg: 18},
	{Name: "Granadilla", NamePolish: "Granadilla", Category: "Owoce", PricePerKg: 40},
	{Name: "Kohlrabi", NamePolish: "Kalarepa", Category: "Warzywa", PricePerKg: 4.5},
	{Name: "Onion Red", NamePolish: "Cebula czerwona", Category: "Warzywa", PricePerKg: 4},
	{Name: "Onion Red Peeled", NamePolish: "Cebula czerwona obrana", Category: "Warzywa", PricePerKg: 5},
	{Name: "Onion White", NamePolish: "Cebula biała", Category: "Warzywa", PricePerKg: 3.5},
	{Name: "Potato Red", NamePolish: "Ziemniak czerwony", Category: "Warzywa", PricePerKg: 2.5},
	{Name: "Potato Red Washed", NamePolish: "Ziemniak czerwony myty", Category: "Warzywa", PricePerKg: 3},
	{Name: "Potato Sweet", NamePolish: "Batat", Category: "Warzywa", PricePerKg: 7},
	{Name: "Potato White", NamePolish: "Ziemniak biały", Category: "Warzywa", PricePerKg: 2},
	{Name: "Redded Radish", NamePolish: "Rzodkiewka", Category: "Warzywa", PricePerKg: 6},
	{Name: "Salak", NamePolish: "Salak", Category: "Owoce", PricePerKg: 35},
	{Name: "Tamarillo", NamePolish: "Tamarillo", Category: "Owoce", PricePerKg: 30},
	{Name: "Tangelo", NamePolish: "Tangelo", Category: "Owoce", PricePerKg: 10},
	{Name: "Walnut", NamePolish: "Orzech włoski", Category: "Owoce", PricePerKg: 40},
	{Name: "Walnut Peeled", NamePolish: "Orzech włoski obrany", Category: "Owoce", PricePerKg: 60},

	// Nuts (Orzechy) - 30-70 PLN/kg
	{Name: "Chestnut", NamePolish: "Kasztan", Category: "Owoce", PricePerKg: 25},
	{Name: "Hazelnut", NamePolish: "Orzech laskowy", Category: "Owoce", PricePerKg: 45},
	{Name: "Hazelnut Peeled", NamePolish: "Orzech laskowy obrany", Category: "Owoce", PricePerKg: 65},
	{Name: "Nut Forest", NamePolish: "Orzech leśny", Category: "Owoce", PricePerKg: 50},
	{Name: "Nut Pecan", NamePolish: "Orzech pekan", Category: "Owoce", PricePerKg: 70},
}
