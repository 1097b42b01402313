// Package rules implements the static assistant responder. It matches
// keywords in priority order and returns canned platform guidance, so
// the assistant stays useful when no language model is configured.
package rules

import (
	"fmt"
	"strings"

	"github.com/hirelink/hirelink/recruitment/seeker"
)

const jobSearchReply = `🔍 I can help you find jobs! Here's how:

1. Go to the **Jobs** page from the navbar
2. Use filters to narrow down by:
   - Location
   - Salary range
   - Job type (Full-time, Part-time, Remote)
   - Experience level
3. Click on any job to see full details
4. Hit **Apply** to submit your application

You can also **Save Jobs** for later and set up **Job Alerts** for new postings!`

const profileReply = `👤 To complete your profile:

1. Click on your **avatar** in the top-right
2. Select **View Profile**
3. Fill in these sections:
   - 📝 Bio/Summary
   - 🎓 Education details
   - 💼 Work experience
   - 🛠️ Skills
   - 📄 Upload your resume

A complete profile increases your chances of getting hired by **60%**! Make sure to keep it updated.`

const applyReply = `📝 To apply for a job:

1. Browse jobs on the **Jobs** page
2. Click on a job that interests you
3. Review the job description and requirements
4. Click the **Apply** button
5. Your profile and resume will be submitted

**Tips:**
- Tailor your profile for each application
- Check application status in **My Applications**
- Follow up professionally after 1 week`

const statusReply = `📊 To check your application status:

1. Go to **My Applications** from the navbar
2. You'll see all your submitted applications
3. Status can be:
   - ⏳ **Pending** - Under review
   - ✅ **Shortlisted** - You're selected for next round
   - ❌ **Rejected** - Not selected this time
   - 🎉 **Accepted** - Congratulations!

Keep applying to increase your chances!`

const savedJobsReply = `💾 Saved Jobs feature:

- Click the **bookmark icon** on any job card to save it
- Access all saved jobs from **Saved Jobs** in the navbar
- Review them later when you're ready to apply
- Remove jobs you're no longer interested in

Pro tip: Save jobs and apply in batches!`

const alertsReply = `🔔 Set up Job Alerts:

1. Go to **Job Alerts** from the navbar
2. Create an alert with your preferences:
   - Keywords (e.g., "Software Developer")
   - Location
   - Salary range
3. Choose notification frequency
4. Get notified when matching jobs are posted!

Never miss an opportunity again! 🎯`

const postJobReply = `💼 To post a new job:

1. Go to **Jobs** in the admin navbar
2. Click **Post New Job** button
3. Fill in job details:
   - Job title and description
   - Requirements and qualifications
   - Salary range
   - Location and job type
   - Number of positions
4. Click **Submit**

Your job will be visible to all candidates immediately!`

const manageApplicationsReply = `📋 To manage applications:

1. Go to **Jobs** page
2. Click on any job to see applicants
3. Review candidate profiles and resumes
4. Update application status:
   - Shortlist promising candidates
   - Reject unsuitable applications
   - Accept the best candidate

You can also contact candidates directly through the platform.`

const companyReply = `🏢 To manage your company:

1. Go to **Companies** in the admin navbar
2. Click **Register New Company**
3. Add company details:
   - Company name and logo
   - Description
   - Website URL
   - Location
4. Save your company profile

A complete company profile attracts better candidates!`

const recruiterFeaturesReply = `👋 Hi! As a recruiter, I can help you with:

📋 **Post & Manage Jobs**
🏢 **Create Company Profiles**
👥 **Review Applications**
✅ **Shortlist Candidates**
📧 **Contact Applicants**

What would you like to know more about?`

const seekerFeaturesReply = `👋 Hi! I can help you with:

🔍 **Finding Jobs** - Search and filter jobs
📝 **Applications** - Apply and track status
👤 **Profile Help** - Complete your profile
💾 **Saved Jobs** - Bookmark interesting jobs
🔔 **Job Alerts** - Get notified of new jobs
📊 **Career Tips** - Improve your chances

What would you like to know?`

const resumeReply = `📄 Resume Tips:

1. **Upload your resume** in your profile
2. Keep it **updated** regularly
3. **Tailor it** for each application
4. Include:
   - Contact information
   - Professional summary
   - Work experience
   - Education
   - Skills and certifications

Format: PDF is preferred! Keep it to 1-2 pages.`

const skillsReply = `🛠️ Adding Skills:

1. Go to your **Profile**
2. Click **Edit Profile**
3. Add relevant skills to your field
4. Include both technical and soft skills

**Popular Skills:**
- Programming languages (Python, Java, JavaScript)
- Frameworks (React, Node.js, Spring Boot)
- Tools (Git, Docker, AWS)
- Soft skills (Communication, Leadership)

Add 10-15 relevant skills for best results!`

const recruiterDefaultTopics = `
🏢 Creating company profiles
📋 Posting jobs
👥 Managing applications
✅ Reviewing candidates`

const seekerDefaultTopics = `
🔍 Finding and searching jobs
📝 Applying for positions
👤 Completing your profile
💾 Saving jobs for later
🔔 Setting up job alerts
📊 Checking application status`

// Respond returns a canned reply for the message. Matching is ordered,
// so the first matching topic wins.
func Respond(message string, role seeker.Role) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	isRecruiter := role == seeker.RoleRecruiter

	contains := func(keywords ...string) bool {
		for _, keyword := range keywords {
			if strings.Contains(normalized, keyword) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("find job", "search job", "looking for job"):
		return jobSearchReply

	case contains("profile", "complete profile", "update profile"):
		return profileReply

	case contains("apply", "application", "how to apply"):
		return applyReply

	case contains("status", "my application"):
		return statusReply

	case contains("save", "saved job", "bookmark"):
		return savedJobsReply

	case contains("alert", "notification"):
		return alertsReply

	case isRecruiter && contains("post job", "create job"):
		return postJobReply

	case isRecruiter && contains("application"):
		return manageApplicationsReply

	case isRecruiter && contains("company"):
		return companyReply

	case contains("feature", "what can", "help"):
		if isRecruiter {
			return recruiterFeaturesReply
		}
		return seekerFeaturesReply

	case contains("resume", "cv"):
		return resumeReply

	case contains("skill"):
		return skillsReply

	case contains("hi", "hello", "hey"):
		audience := "find your dream job"
		if isRecruiter {
			audience = "find great candidates and manage your job postings"
		}
		return fmt.Sprintf(`👋 Hello! Welcome to JobPortal!

I'm your AI assistant here to help you %s!

Try asking me:
- "Help me find jobs"
- "How do I complete my profile?"
- "How to apply for a job?"
- "Check application status"

How can I assist you today?`, audience)

	case contains("thank"):
		goal := "search"
		if isRecruiter {
			goal = "postings"
		}
		return fmt.Sprintf("You're welcome! 😊 Feel free to ask if you need any more help. Good luck with your job %s! 🚀", goal)

	default:
		topics := seekerDefaultTopics
		if isRecruiter {
			topics = recruiterDefaultTopics
		}
		return fmt.Sprintf(`I'm here to help! You can ask me about:

%s

What would you like to know?`, topics)
	}
}
