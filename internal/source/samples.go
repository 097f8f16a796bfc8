package source

import (
	"time"

	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
)

// sampleMessages returns the built-in demo inbox. Timestamps are relative
// to now so the inbox always looks current.
func sampleMessages() []model.Message {
	base := time.Now()
	return []model.Message{
		{
			ID:         "mock_1",
			Sender:     "professor.smith@university.edu",
			SenderName: "Dr. Sarah Smith",
			Subject:    "DBMS Mini-Project Deadline Reminder",
			Body: "Dear Students,\n\nThis is a reminder that your DBMS mini-project is due on March 15, 2024. " +
				"Please submit your project report and code repository link by 11:59 PM.\n\n" +
				"If you have any questions, please reach out to me or the TA.\n\nBest regards,\nDr. Smith",
			Timestamp:      base.Add(-48 * time.Hour),
			Labels:         []string{"Important", "Work"},
			HasAttachments: true,
			Attachments: []model.Attachment{
				{Name: "project_guidelines.pdf", MimeType: "application/pdf"},
			},
		},
		{
			ID:         "mock_2",
			Sender:     "team.lead@company.com",
			SenderName: "John Martinez",
			Subject:    "Team Meeting Tomorrow at 2 PM",
			Body: "Hi team,\n\nWe have a team meeting scheduled for tomorrow (March 10) at 2:00 PM in Conference Room B. " +
				"Agenda:\n- Q1 Review\n- Project updates\n- Resource allocation\n\nPlease confirm your attendance.\n\nThanks,\nJohn",
			Timestamp: base.Add(-24 * time.Hour),
			Labels:    []string{"Meeting"},
		},
		{
			ID:         "mock_3",
			Sender:     "newsletter@techweekly.com",
			SenderName: "Tech Weekly",
			Subject:    "This Week in Tech: AI Breakthroughs",
			Body:       "Check out the latest AI developments this week...",
			Timestamp:  base.Add(-12 * time.Hour),
			Labels:     []string{"Newsletter"},
			IsRead:     true,
		},
		{
			ID:         "mock_4",
			Sender:     "mom@family.com",
			SenderName: "Mom",
			Subject:    "Family Dinner This Weekend",
			Body: "Hi sweetie,\n\nDon't forget about family dinner this Saturday at 6 PM. " +
				"Your dad is making his famous lasagna!\n\nLove,\nMom",
			Timestamp: base.Add(-72 * time.Hour),
			Labels:    []string{"Personal"},
			IsRead:    true,
		},
		{
			ID:         "mock_5",
			Sender:     "ta.jones@university.edu",
			SenderName: "TA Michael Jones",
			Subject:    "Assignment 3 Grading Complete",
			Body: "Hello,\n\nAssignment 3 has been graded. Grades are available on the course portal. " +
				"Average score: 85/100.\n\nIf you have questions about your grade, please schedule office hours.\n\nBest,\nMichael",
			Timestamp: base.Add(-120 * time.Hour),
			Labels:    []string{"Work"},
			IsRead:    true,
		},
		{
			ID:         "mock_6",
			Sender:     "client@business.com",
			SenderName: "Robert Chen",
			Subject:    "Urgent: Project Proposal Needed",
			Body: "Hi,\n\nWe need the project proposal by end of day today. This is urgent. " +
				"Please send it as soon as possible.\n\nThanks,\nRobert",
			Timestamp: base.Add(-3 * time.Hour),
			Labels:    []string{"Urgent", "Work"},
		},
		{
			ID:         "mock_7",
			Sender:     "friend.alex@gmail.com",
			SenderName: "Alex",
			Subject:    "Weekend Plans?",
			Body:       "Hey!\n\nWhat are you up to this weekend? Want to grab coffee or see a movie?\n\nLet me know!\nAlex",
			Timestamp:  base.Add(-29 * time.Hour),
			Labels:     []string{"Personal"},
		},
		{
			ID:         "mock_8",
			Sender:     "hr@company.com",
			SenderName: "HR Department",
			Subject:    "Performance Review Scheduled",
			Body: "Your annual performance review has been scheduled for March 20, 2024 at 10:00 AM. " +
				"Please prepare a self-assessment document.\n\nLocation: HR Office, Room 301",
			Timestamp: base.Add(-96 * time.Hour),
			Labels:    []string{"Work", "Important"},
			IsRead:    true,
		},
		{
			ID:         "mock_9",
			Sender:     "spam@fake-winner.com",
			SenderName: "Prize Winner",
			Subject:    "You've Won $1,000,000!",
			Body:       "Congratulations! You've won a million dollars! Click here to claim...",
			Timestamp:  base.Add(-144 * time.Hour),
			Labels:     []string{"Spam"},
		},
		{
			ID:         "mock_10",
			Sender:     "project.manager@company.com",
			SenderName: "Lisa Wang",
			Subject:    "Project Milestone: Code Review Due",
			Body: "The code review for Sprint 3 is due by Friday, March 12. Please ensure all pull requests are reviewed and merged.\n\n" +
				"Key areas to focus:\n- Security checks\n- Performance optimization\n- Documentation",
			Timestamp:      base.Add(-56 * time.Hour),
			Labels:         []string{"Work", "To-Do"},
			HasAttachments: true,
			Attachments: []model.Attachment{
				{Name: "review_checklist.docx", MimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
			},
		},
		{
			ID:         "mock_11",
			Sender:     "conference@techconf.org",
			SenderName: "Tech Conference 2024",
			Subject:    "Your Conference Registration Confirmed",
			Body: "Thank you for registering! Your conference pass is attached. " +
				"Event dates: April 5-7, 2024.\n\nSee you there!",
			Timestamp:      base.Add(-168 * time.Hour),
			Labels:         []string{"Newsletter", "Event"},
			HasAttachments: true,
			Attachments: []model.Attachment{
				{Name: "conference_pass.pdf", MimeType: "application/pdf"},
			},
			IsRead: true,
		},
		{
			ID:         "mock_12",
			Sender:     "colleague@company.com",
			SenderName: "David Kim",
			Subject:    "Re: Database Schema Discussion",
			Body: "Thanks for your input on the schema design. I've updated the document with your suggestions. " +
				"Can we discuss the indexing strategy in our next sync?\n\nBest,\nDavid",
			Timestamp: base.Add(-6 * time.Hour),
			Labels:    []string{"Work"},
			IsRead:    true,
		},
		{
			ID:         "mock_13",
			Sender:     "bank@secure-bank.com",
			SenderName: "Secure Bank",
			Subject:    "Monthly Statement Available",
			Body:       "Your monthly account statement is now available. Please review your transactions.",
			Timestamp:  base.Add(-192 * time.Hour),
			Labels:     []string{"Personal", "Finance"},
			IsRead:     true,
		},
		{
			ID:         "mock_14",
			Sender:     "mentor@career.com",
			SenderName: "Career Mentor",
			Subject:    "Follow-up: Career Advice Session",
			Body: "Following up on our conversation, here are the resources I mentioned:\n" +
				"1. Industry report\n2. Networking guide\n3. Interview prep materials\n\nLet's schedule another session next month.",
			Timestamp:      base.Add(-74 * time.Hour),
			Labels:         []string{"Personal"},
			HasAttachments: true,
			Attachments: []model.Attachment{
				{Name: "industry_report.pdf", MimeType: "application/pdf"},
				{Name: "networking_guide.pdf", MimeType: "application/pdf"},
			},
		},
		{
			ID:         "mock_15",
			Sender:     "deadline.reminder@university.edu",
			SenderName: "Course System",
			Subject:    "Assignment 4 Due in 3 Days",
			Body:       "Reminder: Assignment 4 for CS301 is due on March 13, 2024 at 11:59 PM. Don't forget to submit!",
			Timestamp:  base.Add(-1 * time.Hour),
			Labels:     []string{"Work", "Deadline"},
		},
	}
}
