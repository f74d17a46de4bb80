package catalog

// Default returns the built-in catalog, used when no catalog file is
// configured.
func Default() *Catalog {
	return &Catalog{
		Quotes:        defaultQuotes,
		Gifts:         defaultGifts,
		Gallery:       defaultGallery,
		SecretGallery: defaultSecretGallery,
	}
}

var defaultQuotes = []Quote{
	{Text: "Best friends don't judge each other... they judge other people together! 😈", Author: "Kapuuu😊"},
	{Text: "True friendship is when you walk into their house and your WiFi connects automatically 📱", Author: "Kapuuu😊"},
	{Text: "Friends buy you food. Best friends eat your food without asking 🍕", Author: "Kapuuu😊"},
	{Text: "I don't know what's tighter, our jeans or our friendship 👖", Author: "Kapuuu😊"},
	{Text: "You're the friend I'd slow run with in a zombie apocalypse 🧟‍♂️", Author: "Kapuuu😊"},
	{Text: "We're best friends because everyone else sucks 🤷‍♀️", Author: "Kapuuu😊"},
	{Text: "Counting down to celebrating the day the world got a whole lot cuter 😘", Author: "Kapuuu😊"},
	{Text: "T-minus days until we celebrate your fabulousness 💃", Author: "Kapuuu😊"},
	{Text: "Getting ready to celebrate the birthday of the most amazing person I know 🌟", Author: "Kapuuu😊"},
	{Text: "Your birthday is coming! Time to practice your surprised face 😮", Author: "Kapuuu😊"},
	{Text: "Birthday loading... Please wait... 🔄", Author: "Kapuuu😊"},
	{Text: "Warning: Excessive birthday cuteness approaching 🚨", Author: "Kapuuu😊"},
	{Text: "You're the avocado to my toast 🥑", Author: "Kapuuu😊"},
	{Text: "Partners in crime, best friends in time 🕶️", Author: "Kapuuu😊"},
	{Text: "You're my favorite notification 📱", Author: "Kapuuu😊"},
	{Text: "You're not just a snack, you're the whole vending machine 🍫", Author: "Kapuuu😊"},
	{Text: "Too glam to give a damn, that's why we're friends 💅", Author: "Kapuuu😊"},
	{Text: "Birthday week loading: Fabulousness at 90% 📊", Author: "Kapuuu😊"},
	{Text: "Warning: Birthday queen about to slay 👑", Author: "Kapuuu😊"},
	{Text: "Your birthday glow is already showing ✨", Author: "Kapuuu😊"},
	{Text: "You're the sparkle in my glitter ✨", Author: "Kapuuu😊"},
	{Text: "My favorite partner in mischief 😈", Author: "Kapuuu😊"},
	{Text: "Life's better with your crazy added to mine 🎭", Author: "Kapuuu😊"},
	{Text: "Almost time to celebrate the maharani jiii 👑", Author: "Kapuuu😊"},
	{Text: "Preparing to celebrate the day that made my life infinitely better 🥰", Author: "Kapuuu😊"},
	{Text: "Getting closer to celebrating my favorite person's special day ✨", Author: "Kapuuu😊"},
	{Text: "Soon we'll be toasting to your amazingness 🥂", Author: "Kapuuu😊"},
	{Text: "T-minus days until maximum birthday sparkle ✨", Author: "Kapuuu😊"},
	{Text: "Birthday vibes intensifying... 📈", Author: "Kapuuu😊"},
	{Text: "Warming up the birthday dance floor 💃", Author: "Kapuuu😊"},
	{Text: "You're the cheese to my pizza 🍕", Author: "Kapuuu😊"},
	{Text: "We're proof that friends don't need to be sane to have fun 🤪", Author: "Kapuuu😊"},
	{Text: "Almost time for your birthday glow-up ✨", Author: "Kapuuu😊"},
	{Text: "Birthday countdown mode: ACTIVATED 🚀", Author: "Kapuuu😊"},
	{Text: "Your birthday radar is beeping louder 📡", Author: "Kapuuu😊"},
	{Text: "The birthday countdown committee is in session 📋", Author: "Kapuuu😊"},
	{Text: "Birthday preparations in progress 🎨", Author: "Kapuuu😊"},
	{Text: "Too fab to care, too blessed to stress ✨", Author: "Kapuuu😊"},
	{Text: "Queens/Kings supporting queens/kings 👑", Author: "Kapuuu😊"},
	{Text: "Preparing the birthday runway for tomorrow 👠", Author: "Kapuuu😊"},
}

var defaultGifts = []Gift{
	{Name: "Spa day voucher", Description: "A full day of doing absolutely nothing, guilt free", Image: "/gifts/spa.jpg"},
	{Name: "Polaroid camera", Description: "For capturing the chaos in real time", Image: "/gifts/polaroid.jpg"},
	{Name: "Silver charm bracelet", Description: "One charm per inside joke", Image: "/gifts/bracelet.jpg"},
	{Name: "Giant teddy bear", Description: "Bigger than the last one, as demanded", Image: "/gifts/teddy.jpg"},
	{Name: "Concert tickets", Description: "Front row, screaming the lyrics wrong together", Image: "/gifts/concert.jpg"},
	{Name: "Dessert crawl", Description: "Every bakery in town, one evening, zero regrets", Image: "/gifts/dessert.jpg"},
}

var defaultGallery = []string{
	"/you/photo_14_2025-01-31_14-07-44.jpg",
	"/you/photo_11_2025-01-31_14-07-44.jpg",
	"/you/photo_9_2025-01-31_14-07-44.jpg",
	"/you/photo_4_2025-01-31_14-07-44.jpg",
	"/you/WhatsApp Image 2024-12-14 at 14.09.55_7762d349.jpg",
	"/you/WhatsApp Image 2024-10-03 at 21.48.29_1bb3f7fe.jpg",
	"/you/photo_2024-09-15_01-16-21.jpg",
	"/you/photo_2024-09-15_01-16-14.jpg",
	"/you/IMG_20240612_133809.jpg",
	"/you/Screenshot 2024-06-08 141515.png",
	"/you/Screenshot 2024-03-31 182815.png",
	"/you/WhatsApp Image 2024-03-23 at 12.28.27_6d14405a.jpg",
	"/you/photo_2024-03-26_20-40-25.jpg",
	"/you/Snapchat-1533574450.jpg",
	"/you/WhatsApp Image 2023-12-31 at 13.24.05_30b999c6.jpg",
	"/you/WhatsApp Image 2023-12-26 at 12.57.36_4228c5fa.jpg",
	"/you/WhatsApp Image 2023-11-13 at 13.40.30_dbee68c4.jpg",
}

var defaultSecretGallery = []string{
	"/explicit-content/image.png",
	"/explicit-content/Screenshot 2025-02-22 224555.png",
	"/explicit-content/Screenshot 2025-01-27 214000.png",
	"/explicit-content/Screenshot 2025-01-25 134335.png",
	"/explicit-content/Screenshot 2025-01-25 134232.png",
	"/explicit-content/Screenshot 2025-01-17 215757.png",
	"/explicit-content/kundli.jpg",
	"/explicit-content/lol.jpg",
	"/explicit-content/meme-1.jpg",
	"/explicit-content/meme-2.jpg",
}
