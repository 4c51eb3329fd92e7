package seed

import "github.com/finwise/finwise-server/internal/model"

// SamplePassword is the well-known demo credential for every seeded account.
const SamplePassword = "password"

func sampleUsers(passwordHash string) []model.User {
	return []model.User{
		{
			ID:           "user1",
			FullName:     "John Smith",
			Email:        "user@example.com",
			PasswordHash: passwordHash,
			Type:         model.AccountUser,
			JoinDate:     "2025-06-01",
			Interests:    []string{"Investing", "Retirement", "Budgeting"},
			Meetings:     []model.Meeting{},
			Messages:     []model.Message{},
		},
		{
			ID:           "exp1",
			FullName:     "Sarah Johnson",
			Email:        "sarah@example.com",
			PasswordHash: passwordHash,
			Type:         model.AccountExpert,
			JoinDate:     "2025-01-15",
			Specialty:    "Personal Finance",
			Credentials:  "CFP, CFA",
			Experience:   "10+ years",
			Bio:          "I am a Certified Financial Planner with over 10 years of experience helping individuals and families achieve their financial goals. I specialize in budgeting, debt management, and creating sustainable savings plans that help build financial stability.",
			Articles:     []string{"art1"},
			Meetings:     []model.Meeting{},
			Messages:     []model.Message{},
			Clients:      []string{},
		},
		{
			ID:           "exp2",
			FullName:     "Michael Chen",
			Email:        "michael@example.com",
			PasswordHash: passwordHash,
			Type:         model.AccountExpert,
			JoinDate:     "2025-02-20",
			Specialty:    "Investment Advisory",
			Credentials:  "CFA, MBA",
			Experience:   "12+ years",
			Bio:          "As a Certified Investment Advisor with extensive experience in market analysis, I help clients build diversified portfolios aligned with their long-term financial goals while navigating market volatility.",
			Articles:     []string{"art2"},
			Meetings:     []model.Meeting{},
			Messages:     []model.Message{},
			Clients:      []string{},
		},
		{
			ID:           "exp3",
			FullName:     "David Williams",
			Email:        "david@example.com",
			PasswordHash: passwordHash,
			Type:         model.AccountExpert,
			JoinDate:     "2025-03-10",
			Specialty:    "Retirement Planning",
			Credentials:  "CFP, RMA",
			Experience:   "8+ years",
			Bio:          "I specialize in helping clients prepare for comfortable, financially secure retirements, with strategies that consider income needs, tax efficiency, healthcare costs, and estate planning.",
			Articles:     []string{"art3"},
			Meetings:     []model.Meeting{},
			Messages:     []model.Message{},
			Clients:      []string{},
		},
	}
}

func sampleExperts() []model.ExpertProfile {
	return []model.ExpertProfile{
		{
			ID:          "exp1",
			Name:        "Sarah Johnson",
			Email:       "sarah@example.com",
			Title:       "Personal Finance Specialist",
			Bio:         "I am a Certified Financial Planner with over 10 years of experience helping individuals and families achieve their financial goals. I specialize in budgeting, debt management, and creating sustainable savings plans that help build financial stability.",
			ImgSrc:      "https://images.unsplash.com/photo-1542744173-05336fcc7ad4",
			Rating:      "4.5",
			ReviewCount: 28,
			Specialty:   "Personal Finance",
			Credentials: "CFP, CFA",
			Experience:  "10+ years",
			Specialties: []string{"Personal Finance", "Budgeting", "Debt Management", "Financial Education"},
			Articles:    []string{"art1"},
			Type:        model.AccountExpert,
		},
		{
			ID:          "exp2",
			Name:        "Michael Chen",
			Email:       "michael@example.com",
			Title:       "Investment Advisor",
			Bio:         "As a Certified Investment Advisor with extensive experience in market analysis, I help clients build diversified portfolios aligned with their long-term financial goals while navigating market volatility.",
			ImgSrc:      "https://images.unsplash.com/photo-1526628953301-3e589a6a8b74",
			Rating:      "5.0",
			ReviewCount: 42,
			Specialty:   "Investment Advisory",
			Credentials: "CFA, MBA",
			Experience:  "12+ years",
			Specialties: []string{"Investment Strategy", "Portfolio Management", "Market Analysis", "Wealth Building"},
			Articles:    []string{"art2"},
			Type:        model.AccountExpert,
		},
		{
			ID:          "exp3",
			Name:        "David Williams",
			Email:       "david@example.com",
			Title:       "Retirement Planning Expert",
			Bio:         "I specialize in helping clients prepare for comfortable, financially secure retirements, with strategies that consider income needs, tax efficiency, healthcare costs, and estate planning.",
			ImgSrc:      "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40",
			Rating:      "4.0",
			ReviewCount: 35,
			Specialty:   "Retirement Planning",
			Credentials: "CFP, RMA",
			Experience:  "8+ years",
			Specialties: []string{"Retirement Planning", "Estate Planning", "Tax Strategy", "Social Security Optimization"},
			Articles:    []string{"art3"},
			Type:        model.AccountExpert,
		},
	}
}

func sampleArticles() []model.Article {
	return []model.Article{
		{
			ID:       "art1",
			Title:    "5 Budgeting Strategies for Beginners",
			Author:   "Sarah Johnson",
			AuthorID: "exp1",
			Date:     "2025-06-15",
			Category: "budgeting",
			Summary:  "Learn how to create and stick to a budget that works for your financial goals and lifestyle.",
			Content:  "Creating a budget is one of the most important steps in taking control of your financial life.\n\n1. The 50/30/20 Rule: allocate 50% of your income to needs, 30% to wants, and 20% to savings and debt repayment.\n\n2. Zero-Based Budgeting: give every dollar a job so income minus allocations equals zero.\n\n3. Envelope System: divide cash into envelopes per spending category; an empty envelope is your limit.\n\n4. Pay Yourself First: direct a portion of income to savings before budgeting expenses.\n\n5. Use Budgeting Apps: automate tracking and get insight into spending habits.\n\nThe best budget is one you can stick to. Start small, be consistent, and adjust as needed.",
			Image:    "https://images.unsplash.com/photo-1631856952982-7db18c2bdca4",
			Tags:     []string{"budgeting", "beginners", "financial planning"},
		},
		{
			ID:       "art2",
			Title:    "Understanding Investment Risks",
			Author:   "Michael Chen",
			AuthorID: "exp2",
			Date:     "2025-07-02",
			Category: "investing",
			Summary:  "Discover different types of investment risks and strategies to mitigate them.",
			Content:  "Every investment carries some level of risk, and understanding these risks is crucial for informed decisions.\n\nMarket Risk affects the entire market and cannot be diversified away. Inflation Risk erodes purchasing power over time. Liquidity Risk measures how quickly an investment converts to cash without loss. Credit Risk is the possibility a borrower defaults. Concentration Risk grows when too much of a portfolio sits in one investment.\n\nManage risk through diversification, asset allocation matched to your horizon, dollar-cost averaging, and regular rebalancing. Risk and return are correlated; know your tolerance and invest accordingly.",
			Image:    "https://images.unsplash.com/photo-1649954174454-767fd0a40fb6",
			Tags:     []string{"investing", "risk management", "diversification"},
		},
		{
			ID:       "art3",
			Title:    "Retirement Planning in Your 30s",
			Author:   "David Williams",
			AuthorID: "exp3",
			Date:     "2025-07-10",
			Category: "retirement",
			Summary:  "Why starting retirement planning early can make a significant difference in your financial future.",
			Content:  "Your 30s are a critical time for retirement planning; compound interest makes this decade particularly valuable.\n\nMaximize employer-sponsored plan contributions, especially with matching. Open an IRA alongside it. Aim to save at least 15% of income, increasing gradually. Build a diversified portfolio with an allocation suited to your age. Automate contributions, and pay down high-interest debt.\n\nSaving $500 monthly from age 30 at a 7% average return yields roughly $1 million by 65; waiting until 40 halves that. Retirement planning is a marathon, not a sprint.",
			Image:    "https://images.unsplash.com/photo-1716878906849-17ed9e9e6186",
			Tags:     []string{"retirement", "30s", "financial planning", "investing"},
		},
	}
}
