package lexicon

import "github.com/goshopper/matchstick/pkg/textnorm"

// Seed returns the compiled-in lexicon set for the Congolese grocery market
// the app launched in. Variants cover French, English, Spanish, Swahili,
// Lingala and German; the tables mirror the curated master-product data the
// receipt pipeline was tuned on. Used when no lexicon directory is
// configured, and as the reference set in tests.
func Seed() *Lexicon {
	return &Lexicon{
		Manifest: Manifest{
			ID:        "goshopper-cd",
			Market:    "cd",
			Languages: []string{"fr", "en", "es", "sw", "ln", "de"},
			Version:   "1.0.0",
			Source:    "curated",
		},
		Concepts:      seedConcepts(),
		Abbreviations: seedAbbreviations(),
		OCRRules:      seedOCRRules(),
		Stopwords:     seedStopwords(),
	}
}

// Concept order is part of the data: resolution returns the first match, so
// concepts with longer, more specific variants come before ones whose
// variants they contain.
func seedConcepts() []Concept {
	return []Concept{
		{ID: "plantain", Variants: []string{"plantain", "banane plantain", "plantain mûr", "plantain banana", "cooking banana", "makemba"}},
		{ID: "banana", Variants: []string{"banane", "banane douce", "banana", "sweet banana", "ndizi"}},
		{ID: "tomato", Variants: []string{"tomate", "tomates", "tomato", "tomatoes", "nyanya"}},
		{ID: "onion", Variants: []string{"oignon", "oignons", "onion", "onions", "cebolla", "kitunguu", "zwiebel"}},
		{ID: "garlic", Variants: []string{"ail", "garlic", "ajo", "knoblauch"}},
		{ID: "carrot", Variants: []string{"carotte", "carottes", "carrot", "carrots", "zanahoria", "karoti", "karotte"}},
		{ID: "potato", Variants: []string{"pomme de terre", "patate", "potato", "potatoes", "papa", "viazi", "kartoffel"}},
		{ID: "cassava", Variants: []string{"manioc", "cassava", "kwanga", "yuca", "mihogo"}},
		{ID: "rice", Variants: []string{"riz", "rice", "arroz", "mchele", "loso", "reis"}},
		{ID: "flour", Variants: []string{"farine", "flour", "harina", "unga", "mehl"}},
		{ID: "sugar", Variants: []string{"sucre", "sugar", "azucar", "sukari", "sukali", "zucker"}},
		{ID: "salt", Variants: []string{"sel", "salt", "sal", "chumvi", "mungwa", "salz"}},
		{ID: "milk", Variants: []string{"lait", "milk", "leche", "maziwa", "miliki", "milch"}},
		{ID: "egg", Variants: []string{"oeuf", "oeufs", "egg", "eggs", "huevo", "mayai"}},
		{ID: "bread", Variants: []string{"pain", "bread", "pan", "mkate", "mapa", "brot"}},
		{ID: "chicken", Variants: []string{"poulet", "chicken", "pollo", "kuku", "nsoso"}},
		{ID: "fish", Variants: []string{"poisson", "fish", "pescado", "samaki", "mbisi", "fisch"}},
		{ID: "beef", Variants: []string{"boeuf", "beef", "nyama", "rindfleisch"}},
		{ID: "palm_oil", Variants: []string{"huile de palme", "huile rouge", "palm oil", "red oil", "mafuta ya mawese", "mawese"}},
		{ID: "vegetable_oil", Variants: []string{"huile végétale", "vegetable oil", "cooking oil", "aceite"}},
		{ID: "beans", Variants: []string{"haricots", "haricot", "beans", "kidney beans", "frijoles", "maharagwe", "madesu", "bohnen"}},
		{ID: "peanuts", Variants: []string{"arachides", "cacahuètes", "peanuts", "groundnuts", "karanga", "nguba", "erdnüsse"}},
		{ID: "tomato_paste", Variants: []string{"concentré de tomate", "pâte de tomate", "tomato paste", "tomato puree", "tomatenmark"}},
		{ID: "mayonnaise", Variants: []string{"mayonnaise", "mayo", "mayonesa"}},
		{ID: "maggi", Variants: []string{"maggi", "cube maggi", "bouillon cube"}},
		{ID: "water", Variants: []string{"eau", "eau minérale", "water", "mineral water", "agua", "maji", "wasser"}},
		{ID: "juice", Variants: []string{"jus", "jus de fruit", "juice", "fruit juice", "jugo", "saft"}},
		{ID: "soda", Variants: []string{"soda", "boisson gazeuse", "soft drink", "refresco"}},
		{ID: "beer", Variants: []string{"bière", "beer", "cerveza", "pombe", "masanga", "bier"}},
		{ID: "coffee", Variants: []string{"café", "coffee", "kahawa", "kafe", "kaffee"}},
		{ID: "tea", Variants: []string{"thé", "tea", "chai", "tee"}},
		{ID: "soap", Variants: []string{"savon", "soap", "jabon", "sabuni", "seife"}},
		{ID: "detergent", Variants: []string{"détergent", "lessive", "detergent", "washing powder", "waschmittel"}},
		{ID: "diapers", Variants: []string{"couches", "diapers", "nappies", "pañales", "windeln"}},
		{ID: "toilet_paper", Variants: []string{"papier toilette", "papier hygiénique", "toilet paper", "toilet roll", "papel higienico"}},
	}
}

func seedAbbreviations() map[string]string {
	return map[string]string{
		// French
		"bnn":  "banane",
		"pltn": "plantain",
		"pvre": "poivre",
		"pdt":  "pomme de terre",
		"tom":  "tomate",
		"ogn":  "oignon",
		"crt":  "carotte",
		"poul": "poulet",
		"pssn": "poisson",
		"hle":  "huile",
		"fne":  "farine",
		"scr":  "sucre",
		"lt":   "lait",
		"svn":  "savon",
		"cch":  "couches",
		// English
		"chkn":    "chicken",
		"fsh":     "fish",
		"wtr":     "water",
		"pnts":    "peanuts",
		"grndnts": "groundnuts",
		// Brand names that stand in for products on receipts
		"primus":  "bière",
		"skol":    "bière",
		"fanta":   "soda",
		"coca":    "soda",
		"sprite":  "soda",
		"omo":     "détergent",
		"ariel":   "détergent",
		"pampers": "couches",
		"huggies": "couches",
	}
}

// Curated multi-character fixes first, generic digit/letter heuristics last:
// a generic rule applied early would corrupt words the curated rules catch
// (e.g. "spr1te" must become "sprite", not "sprlte").
func seedOCRRules() []textnorm.Rule {
	curated := []textnorm.Rule{
		{Pattern: `\b1ait\b`, Replacement: "lait"},
		{Pattern: `\bla1t\b`, Replacement: "lait"},
		{Pattern: `\bm1lk\b`, Replacement: "milk"},
		{Pattern: `\bmi1k\b`, Replacement: "milk"},
		{Pattern: `\b0il\b`, Replacement: "oil"},
		{Pattern: `\bo1l\b`, Replacement: "oil"},
		{Pattern: `\bhu1le\b`, Replacement: "huile"},
		{Pattern: `\bhui1e\b`, Replacement: "huile"},
		{Pattern: `\bvvater\b`, Replacement: "water"},
		{Pattern: `\bwa7er\b`, Replacement: "water"},
		{Pattern: `\bspr1te\b`, Replacement: "sprite"},
		{Pattern: `\bfar1ne\b`, Replacement: "farine"},
		{Pattern: `\bsu5re\b`, Replacement: "sucre"},
		{Pattern: `\bp0ulet\b`, Replacement: "poulet"},
	}
	return append(curated, textnorm.GenericRules()...)
}

func seedStopwords() []string {
	return []string{
		// French articles, conjunctions, prepositions
		"le", "la", "les", "un", "une", "des", "du", "de", "au", "aux", "et", "ou",
		// English
		"the", "a", "an", "of", "to", "for", "with", "and", "or",
	}
}
