// Package ui implements the interactive dashboard using bubbletea's Elm architecture.
//
// The TUI is a routed single-screen application:
//  1. [LoginView] / [RegisterView] : Credential forms shown to anonymous sessions
//  2. [HomeView] : Three course carousels (enrolled, recommended, trending) with autoplay
//  3. [ExploreView] : Committed-query search with category filters and clamped paging
//  4. [ProfileView] : Learning-style distribution plus ongoing/completed course split
//  5. [QuestionnaireView] / [QuizResultsView] : Four-step guided recommendation flow
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Route resolution delegates to the session package, so anonymous sessions can
// only ever see the auth screens and a rejected token lands back on login.
//
// [Boundary] wraps the model at the program root and converts panics from
// Update/View into a static apology view instead of corrupting the terminal.
package ui
