package source

// FallbackHeader is the literal header row of the community sheet. Cell order
// is positional; the normalizer indexes into it.
var FallbackHeader = []string{
	"Timestamp", "Company/Event name", "Description", "URL", "Image",
	"Registration fee", "category", "LPA", "Role", "Date",
}

// FallbackTable returns the built-in dataset used when the remote feed is
// unreachable. It doubles as the canonical fixture: nine data rows, three of
// each kind, all with organization and description present.
func FallbackTable() [][]string {
	return [][]string{
		FallbackHeader,
		{"30/08/2025 17:01:30", "Google", "Software Engineer Position - Full Stack Development", "https://careers.google.com", "https://images.unsplash.com/photo-1521737711867-e3b97375f902?w=400&h=200&fit=crop", "0", "Job", "15-25", "Software Engineer", "2025-09-30"},
		{"30/08/2025 17:02:00", "Microsoft", "Summer Internship Program 2025", "https://careers.microsoft.com", "https://images.unsplash.com/photo-1552664730-d307ca884978?w=400&h=200&fit=crop", "0", "Internship", "8-12", "Software Engineering Intern", "2025-10-30"},
		{"30/08/2025 17:03:00", "Tech Conference 2025", "Annual Technology Innovation Summit", "https://techconf2025.com", "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=400&h=200&fit=crop", "50", "Event", "", "Attendee", "2025-12-01"},
		{"30/08/2025 17:04:00", "Amazon", "Cloud Solutions Architect", "https://amazon.jobs", "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=200&fit=crop", "0", "Job", "20-35", "Cloud Architect", "2025-10-30"},
		{"30/08/2025 17:05:00", "Meta", "AI Research Intern", "https://careers.meta.com", "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=400&h=200&fit=crop", "0", "Internship", "10-15", "AI Research Intern", "2025-11-30"},
		{"30/08/2025 17:06:00", "Startup Weekend", "54-Hour Startup Competition", "https://startupweekend.org", "https://images.unsplash.com/photo-1515187029135-18ee286d815b?w=400&h=200&fit=crop", "25", "Event", "", "Participant", "2025-11-15"},
		{"30/08/2025 17:07:00", "Netflix", "Frontend Developer", "https://jobs.netflix.com", "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=400&h=200&fit=crop", "0", "Job", "18-30", "Frontend Developer", "2025-10-15"},
		{"30/08/2025 17:08:00", "Apple", "iOS Development Intern", "https://jobs.apple.com", "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=400&h=200&fit=crop", "0", "Internship", "12-18", "iOS Developer Intern", "2025-11-15"},
		{"30/08/2025 17:09:00", "Hackathon 2025", "24-Hour Coding Challenge", "https://hackathon2025.com", "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?w=400&h=200&fit=crop", "15", "Event", "", "Participant", "2025-10-20"},
	}
}
