package topic

// table is the topic table in display order.
var table = []Topic{
	{
		Slug:        "yoga",
		Name:        "Yoga & Wellness",
		Label:       "Yoga",
		Nav:         "Yoga",
		Description: "Discover the transformative power of yoga for mind, body, and spirit. Expert guidance for all levels.",
		LongDescription: `Yoga is more than just physical exercise—it's a holistic practice that promotes balance between body, mind, and spirit.
As a dedicated practitioner and teacher, I share insights on various yoga styles, mindfulness techniques,
and wellness practices that can transform your daily life.

Whether you're a beginner looking to start your yoga journey or an experienced practitioner seeking to deepen your practice,
you'll find valuable resources here to support your wellness goals.`,
		CallToAction: "Join Now",
		KeyPoints: []string{
			"Yoga poses (asanas) for strength, flexibility, and balance",
			"Breathing techniques (pranayama) for stress reduction",
			"Meditation practices for mental clarity",
			"Mindfulness approaches for everyday life",
			"Holistic wellness strategies beyond the mat",
		},
		Articles: []Article{
			{Title: "The Science Behind Yoga Benefits", Path: "/articles/yoga-science"},
			{Title: "Morning Yoga Routine for Beginners", Path: "/articles/morning-yoga"},
			{Title: "Integrating Mindfulness into Your Workday", Path: "/articles/mindful-work"},
		},
		Gradient: "from-purple-400 to-indigo-500",
		Accent:   "indigo",
	},
	{
		Slug:        "crypto",
		Name:        "Cryptocurrency",
		Label:       "Crypto",
		Nav:         "Cryptocurrency",
		Description: "Navigate the world of digital assets with expert insights, market analysis, and investment strategies.",
		LongDescription: `Cryptocurrency represents one of the most significant financial innovations of our time. Having been involved
in this space since its early days, I provide analysis, insights, and educational content about blockchain
technology, different cryptocurrencies, and investment strategies.

My approach emphasizes understanding the fundamental technology and use cases behind crypto assets,
rather than short-term speculation. I focus on long-term trends, risk management, and the evolving
regulatory landscape.`,
		CallToAction: "Learn More",
		KeyPoints: []string{
			"Blockchain technology fundamentals",
			"Analysis of major cryptocurrencies and protocols",
			"DeFi (Decentralized Finance) applications and opportunities",
			"Risk management strategies for crypto investing",
			"Regulatory developments and their impacts",
		},
		Articles: []Article{
			{Title: "Understanding Blockchain Consensus Mechanisms", Path: "/articles/consensus-mechanisms"},
			{Title: "DeFi vs. Traditional Finance: Key Differences", Path: "/articles/defi-vs-tradfi"},
			{Title: "Crypto Portfolio Diversification Strategies", Path: "/articles/crypto-diversification"},
		},
		Gradient: "from-blue-400 to-teal-500",
		Accent:   "teal",
	},
	{
		Slug:        "development",
		Name:        "Software Development",
		Label:       "Dev",
		Nav:         "Development",
		Description: "Modern web development techniques, best practices, and project showcases from an experienced developer.",
		LongDescription: `With over a decade of experience in software development, I share insights, tutorials, and best practices
for modern web development. My expertise spans frontend frameworks, backend systems, cloud architectures,
and DevOps practices.

I believe in clean code, maintainable architecture, and leveraging the right tools for each project.
Through articles, case studies, and code examples, I aim to help developers of all levels improve their
skills and build better software.`,
		CallToAction: "View Projects",
		KeyPoints: []string{
			"Frontend development with React, Next.js, and modern JavaScript",
			"Backend systems with Node.js, Python, and various databases",
			"Cloud architecture and deployment strategies",
			"Performance optimization techniques",
			"Software design patterns and best practices",
		},
		Articles: []Article{
			{Title: "Building High-Performance React Applications", Path: "/articles/react-performance"},
			{Title: "Serverless Architecture: When to Use It", Path: "/articles/serverless-guide"},
			{Title: "Test-Driven Development in Practice", Path: "/articles/tdd-guide"},
		},
		Gradient: "from-amber-400 to-orange-500",
		Accent:   "orange",
	},
}
