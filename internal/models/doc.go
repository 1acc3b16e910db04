// Package models defines the entities exchanged with the course backend.
//
// All structs here are wire-shaped: their JSON tags mirror the backend's
// field names exactly (Title, Category, short_intro, Sub_Category,
// total_pages, enrolled_courses and so on), so they can be decoded straight
// from responses and encoded straight into requests.
//
//   - [Course] : catalogue entry with VAKG [Category] bucketing
//   - [EnrolledCourse] : course plus completion status and certificate
//   - [UserInfo], [Profile] : session-scoped learner data
//   - [ProgressReport] : per-category progress counts
//   - [SearchPage] : one page of paginated search results
//   - [QuestionnaireAnswers] : the four-step questionnaire payload with its
//     option sets ([EducationLevels], [Domains], [KnowledgeLevels],
//     [LearningStyles])
package models
