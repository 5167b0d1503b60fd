package repository

import "glutivia/internal/domain"

var seedProducts = []domain.Product{
	{ID: "p1", Name: "Glutivia All-Purpose Flour", Category: domain.CategoryPantry, Price: 65, Image: "picture/flour.png", Description: "Rice and tapioca blend for everyday baking.", Weight: "1kg", Badge: "Bestseller"},
	{ID: "p2", Name: "Glutivia Pasta Fusilli", Category: domain.CategoryPantry, Price: 42, Image: "picture/fusilli.png", Description: "Corn and rice pasta that holds its bite.", Weight: "500g"},
	{ID: "p3", Name: "Almond Honey Granola", Category: domain.CategorySnack, Price: 55, Image: "picture/granola.png", Description: "Oven-toasted oats certified gluten-free.", Weight: "350g", Badge: "New"},
	{ID: "p4", Name: "Sesame Rice Crackers", Category: domain.CategorySnack, Price: 28, Image: "picture/crackers.png", Description: "Light crackers with toasted sesame.", Weight: "150g"},
	{ID: "p5", Name: "Seeded Sourdough Loaf", Category: domain.CategoryBakery, Price: 48, Image: "picture/sourdough.png", Description: "Buckwheat sourdough with sunflower and flax seeds.", Weight: "600g"},
	{ID: "p6", Name: "Orange Blossom Msemen", Category: domain.CategoryBakery, Price: 35, Image: "picture/msemen.png", Description: "Flaky Moroccan flatbread made with GF semolina.", Weight: "4 pcs"},
}

var seedMeals = []domain.Meal{
	{ID: "m1", Name: "Glutivia Herb-Crusted Salmon", Calories: 450, Price: 189, Image: "picture/Gemini_Generated_Image_dsms9pdsms9pdsms.png",
		Ingredients: []string{"Wild Salmon", "Organic Quinoa", "Asparagus", "Dill Sauce"},
		Tags:        []string{"High Protein", "Keto Friendly", "100% GF"}, Macros: domain.Macros{Protein: 35, Carbs: 12, Fat: 28}},
	{ID: "m2", Name: "Glutivia Truffle Risotto", Calories: 520, Price: 165, Image: "https://images.unsplash.com/photo-1476124369491-e7addf5db371?auto=format&fit=crop&w=800&q=80",
		Ingredients: []string{"Arborio Rice", "Wild Mushrooms", "Truffle Oil", "Parmesan"},
		Tags:        []string{"Vegetarian", "Comfort Food", "100% GF"}, Macros: domain.Macros{Protein: 14, Carbs: 65, Fat: 22}},
	{ID: "m3", Name: "Glutivia Zucchini Pad Thai", Calories: 380, Price: 145, Image: "https://images.unsplash.com/photo-1559314809-0d155014e29e?auto=format&fit=crop&w=800&q=80",
		Ingredients: []string{"Spiralized Zucchini", "Non-GMO Tofu", "Peanuts", "Tamarind Sauce"},
		Tags:        []string{"Vegan", "Low Carb", "100% GF"}, Macros: domain.Macros{Protein: 18, Carbs: 15, Fat: 16}},
	{ID: "m4", Name: "Glutivia Steak & Sweet Potato", Calories: 600, Price: 210, Image: "https://images.unsplash.com/photo-1600891964092-4316c288032e?auto=format&fit=crop&w=800&q=80",
		Ingredients: []string{"Grass-fed Beef", "Sweet Potato Mash", "Broccolini", "House Spices"},
		Tags:        []string{"Paleo", "High Protein", "100% GF"}, Macros: domain.Macros{Protein: 45, Carbs: 40, Fat: 25}},
	{ID: "m5", Name: "Glutivia Beef Lasagna", Calories: 580, Price: 175, Image: "https://images.unsplash.com/photo-1574894709920-11b28e7367e3?auto=format&fit=crop&w=800&q=80",
		Ingredients: []string{"GF Pasta Sheets", "Ground Beef", "Béchamel Sauce (GF)", "Mozzarella"},
		Tags:        []string{"Family Favorite", "Italian", "100% GF"}, Macros: domain.Macros{Protein: 32, Carbs: 45, Fat: 28}},
	{ID: "m6", Name: "Roast Herb Chicken", Calories: 420, Price: 155, Image: "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?auto=format&fit=crop&w=800&q=80",
		Ingredients: []string{"Half Chicken", "Root Vegetables", "Rosemary", "Garlic"},
		Tags:        []string{"Traditional", "High Protein", "100% GF"}, Macros: domain.Macros{Protein: 38, Carbs: 15, Fat: 22}},
	{ID: "m7", Name: "Quinoa Power Bowl", Calories: 350, Price: 135, Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=800&q=80",
		Ingredients: []string{"Tri-color Quinoa", "Kale", "Sweet Potatoes", "Tahini Dressing"},
		Tags:        []string{"Vegan", "Nutrient Dense", "100% GF"}, Macros: domain.Macros{Protein: 12, Carbs: 48, Fat: 14}},
	{ID: "m8", Name: "Atlas Lamb Tagine", Calories: 620, Price: 225, Image: "picture/Gemini_Generated_Image_6ojp4p6ojp4p6ojp.png",
		Ingredients: []string{"Lamb Shank", "Dried Apricots", "Prunes", "Glutivia Saffron"},
		Tags:        []string{"Exotic", "Slow Cooked", "100% GF"}, Macros: domain.Macros{Protein: 42, Carbs: 25, Fat: 38}},
}

var seedRecipes = []domain.FeaturedRecipe{
	{ID: "r1", Title: "Gluten-Free Msemen", Image: "picture/Gemini_Generated_Image_opid43opid43opid (1).png", Minutes: 25, Difficulty: "Easy", Price: 45, Badge: "Easy",
		Ingredients: []string{"Glutivia Gluten-Free Flour", "Water", "Salt", "Vegetable Oil", "Butter", "Semolina (GF)"}},
	{ID: "r2", Title: "Quinoa Tabbouleh", Image: "picture/Gemini_Generated_Image_4eizt14eizt14eiz.png", Minutes: 15, Difficulty: "Easy", Price: 35, Badge: "15 min",
		Ingredients: []string{"Quinoa", "Fresh Parsley", "Fresh Mint", "Tomatoes", "Lemon Juice", "Olive Oil", "Cucumber"}},
	{ID: "r3", Title: "Almond Flour Pancakes", Image: "https://images.unsplash.com/photo-1528207776546-365bb710ee93?auto=format&fit=crop&w=800&q=80", Minutes: 20, Difficulty: "Easy", Price: 38, Badge: "Popular",
		Ingredients: []string{"Almond Flour", "Eggs", "Almond Milk", "Vanilla Extract", "Baking Powder", "Maple Syrup"}},
	{ID: "r4", Title: "Vegetable Chickpea Tagine", Image: "picture/Gemini_Generated_Image_xsl8ynxsl8ynxsl8.png", Minutes: 45, Difficulty: "Medium", Price: 52, Badge: "Chef's Pick",
		Ingredients: []string{"Chickpeas", "Tomatoes", "Onions", "Garlic", "Cumin", "Paprika", "Carrots", "Zucchini"}},
	{ID: "r5", Title: "Coconut Chocolate Chip Cookies", Image: "picture/Gemini_Generated_Image_l2oinwl2oinwl2oi.png", Minutes: 30, Difficulty: "Easy", Price: 28, Badge: "Sweet",
		Ingredients: []string{"Coconut Flour", "Butter", "Sugar or Honey", "Eggs", "Chocolate Chips (GF)", "Vanilla"}},
	{ID: "r6", Title: "Zucchini Noodle Pasta", Image: "https://images.unsplash.com/photo-1473093295043-cdd812d0e601?auto=format&fit=crop&w=800&q=80", Minutes: 18, Difficulty: "Easy", Price: 42, Badge: "Low Carb",
		Ingredients: []string{"Zucchini", "Cherry Tomatoes", "Garlic", "Olive Oil", "Basil", "Parmesan Cheese"}},
	{ID: "r7", Title: "Moroccan Harira", Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd?auto=format&fit=crop&w=800&q=80", Minutes: 60, Difficulty: "Medium", Price: 48, Badge: "Classic",
		Ingredients: []string{"GF Lentils", "Chickpeas", "Tomato Paste", "Glutivia GF Flour (for thickening)", "Celery", "Cilantro", "Ginger", "Turmeric"}},
	{ID: "r8", Title: "Quinoa Stuffed Peppers", Image: "picture/Gemini_Generated_Image_qg7fcfqg7fcfqg7f.png", Minutes: 40, Difficulty: "Easy", Price: 38, Badge: "Healthy",
		Ingredients: []string{"Bell Peppers", "Cooked Quinoa", "Black Beans", "Corn", "Feta Cheese", "Lime Juice", "Cumin"}},
	{ID: "r9", Title: "Lemon Rosemary Roast Chicken", Image: "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?auto=format&fit=crop&w=800&q=80", Minutes: 75, Difficulty: "Easy", Price: 85, Badge: "Family",
		Ingredients: []string{"Whole Chicken", "Lemon", "Rosemary", "Garlic", "Potatoes", "Olive Oil", "Sea Salt"}},
	{ID: "r10", Title: "Seafood Bastilla", Image: "https://images.unsplash.com/photo-1541529086526-db283c563270?auto=format&fit=crop&w=800&q=80", Minutes: 55, Difficulty: "Hard", Price: 120, Badge: "Chef's Pick",
		Ingredients: []string{"GF Filo Sheets (Rice based)", "Shrimp", "Calamari", "White Fish", "GF Vermicelli", "Ginger", "Saffron", "Butter"}},
	{ID: "r11", Title: "Sweet Potato Brownies", Image: "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?auto=format&fit=crop&w=800&q=80", Minutes: 35, Difficulty: "Easy", Price: 55, Badge: "Sweet",
		Ingredients: []string{"Mashed Sweet Potato", "Almond Butter", "Maple Syrup", "Cocoa Powder", "GF Dark Chocolate Chips", "Sea Salt"}},
	{ID: "r12", Title: "Cauliflower Crust Pizza", Image: "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=800&q=80", Minutes: 40, Difficulty: "Medium", Price: 65, Badge: "Low Carb",
		Ingredients: []string{"Cauliflower Rice", "Mozzarella", "Eggs", "Glutivia GF Oregano", "Tomato Puree", "Basil", "Bell Peppers"}},
}
