package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"coursedeck/internal/models"
	"coursedeck/internal/search"
	"coursedeck/internal/services"
	"coursedeck/internal/session"
	"coursedeck/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	RegisterView
	HomeView
	ExploreView
	ProfileView
	QuestionnaireView
	QuizResultsView
)

// routeView maps a resolved route to its view.
func routeView(r session.Route) ViewState {
	switch r {
	case session.RouteLogin:
		return LoginView
	case session.RouteRegister:
		return RegisterView
	case session.RouteExplore:
		return ExploreView
	case session.RouteProfile:
		return ProfileView
	default:
		return HomeView
	}
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	api     services.API
	session *session.Controller
	search  *search.Controller
	logger  *log.Logger

	view   ViewState
	width  int
	height int

	enrolledDeck    *Carousel
	recommendedDeck *Carousel
	trendingDeck    *Carousel
	focusDeck       int
	cursor          int

	login       authForm
	register    authForm
	searchInput textinput.Model
	quiz        questionnaireForm
	quizResults []models.Course

	profile *models.Profile

	spinner  spinner.Model
	chart    progress.Model
	pending  int
	notice   string
	errNote  string
	help     help.Model
	keys     keyMap
}

type userInfoFetchedMsg struct {
	info *models.UserInfo
	err  error
}

type progressFetchedMsg struct {
	report *models.ProgressReport
	err    error
}

type recommendationsFetchedMsg struct {
	courses []models.Course
	err     error
}

type profileFetchedMsg struct {
	profile *models.Profile
	err     error
}

type loginDoneMsg struct {
	token string
	err   error
}

type registerDoneMsg struct {
	token string
	err   error
}

type searchDoneMsg struct {
	page *models.SearchPage
	err  error
}

type enrollDoneMsg struct {
	course models.Course
	err    error
}

type quizDoneMsg struct {
	courses []models.Course
	err     error
}

// NewModel creates the routed dashboard model with the provided
// dependencies. The autoplay interval applies to all three carousels.
func NewModel(ctx context.Context, api services.API, sess *session.Controller, autoplay time.Duration, logger *log.Logger) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	in := textinput.New()
	in.Placeholder = "Search courses..."
	in.CharLimit = 128
	in.Width = 40

	m := &Model{
		ctx:             ctx,
		api:             api,
		session:         sess,
		search:          search.NewController(api),
		logger:          logger,
		enrolledDeck:    NewCarousel("enrolled", "Your Courses", autoplay, 0),
		recommendedDeck: NewCarousel("recommended", "Recommended For You", autoplay, 0),
		trendingDeck:    NewCarousel("trending", "Trending Courses", autoplay, 0),
		login:           newLoginForm(),
		register:        newRegisterForm(),
		searchInput:     in,
		quiz:            newQuestionnaireForm(),
		spinner:         sp,
		chart:           progress.New(progress.WithDefaultGradient()),
		help:            help.New(),
		keys:            newKeyMap(),
	}
	m.decks()[m.focusDeck].SetFocus(true)
	return m
}

// decks returns the home carousels in focus-cycle order.
func (m *Model) decks() []*Carousel {
	return []*Carousel{m.enrolledDeck, m.recommendedDeck, m.trendingDeck}
}

// Init reads the persisted session. With a token the three dashboard
// fetches run concurrently; without one the backend is never contacted
// and the login view is shown.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.trendingDeck.SetItems(models.TrendingCourses())}

	if m.session.Initialize() {
		m.view = HomeView
		m.pending = 3
		cmds = append(cmds, m.fetchUserInfo(), m.fetchProgress(), m.fetchRecommendations())
	} else {
		m.view = LoginView
	}

	return tea.Batch(cmds...)
}

// navigate applies the routing table and switches views.
func (m *Model) navigate(requested session.Route) {
	resolved := session.Resolve(requested, m.session.Authenticated())
	m.view = routeView(resolved)
	m.errNote = ""
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chart.Width = min(msg.Width-20, 50)
		return m, tea.Batch(
			m.enrolledDeck.Resize(msg.Width),
			m.recommendedDeck.Resize(msg.Width),
			m.trendingDeck.Resize(msg.Width),
		)

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case AutoplayTickMsg:
		return m, tea.Batch(
			m.enrolledDeck.HandleTick(msg),
			m.recommendedDeck.HandleTick(msg),
			m.trendingDeck.HandleTick(msg),
		)

	case tea.MouseMsg:
		if m.view == HomeView {
			return m, tea.Batch(
				m.enrolledDeck.HandleMouse(msg),
				m.recommendedDeck.HandleMouse(msg),
				m.trendingDeck.HandleMouse(msg),
			)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case userInfoFetchedMsg:
		m.pending--
		if cmd, handled := m.fetchFailed(msg.err); handled {
			return m, cmd
		}
		m.session.SetUserInfo(msg.info)
		enrolled := make([]models.Course, 0, len(msg.info.EnrolledCourses))
		for _, c := range msg.info.EnrolledCourses {
			enrolled = append(enrolled, c.Course)
		}
		return m, m.enrolledDeck.SetItems(enrolled)

	case progressFetchedMsg:
		m.pending--
		if cmd, handled := m.fetchFailed(msg.err); handled {
			return m, cmd
		}
		m.session.SetProgress(msg.report)
		return m, nil

	case recommendationsFetchedMsg:
		m.pending--
		if cmd, handled := m.fetchFailed(msg.err); handled {
			return m, cmd
		}
		m.session.SetRecommendations(msg.courses)
		return m, m.recommendedDeck.SetItems(msg.courses)

	case profileFetchedMsg:
		m.pending--
		if cmd, handled := m.fetchFailed(msg.err); handled {
			return m, cmd
		}
		m.profile = msg.profile
		return m, nil

	case loginDoneMsg:
		m.pending--
		if msg.err != nil {
			m.errNote = userMessage(msg.err)
			return m, nil
		}
		if err := m.session.Establish(msg.token); err != nil {
			m.errNote = userMessage(err)
			return m, nil
		}
		m.login.Reset()
		m.notice = ""
		m.navigate(session.RouteHome)
		m.pending += 3
		return m, tea.Batch(m.fetchUserInfo(), m.fetchProgress(), m.fetchRecommendations(), m.spinner.Tick)

	case registerDoneMsg:
		m.pending--
		if msg.err != nil {
			m.errNote = userMessage(msg.err)
			return m, nil
		}
		m.register.Reset()
		if msg.token == "" {
			m.notice = "Account created. Please log in."
			m.navigate(session.RouteLogin)
			return m, nil
		}
		if err := m.session.Establish(msg.token); err != nil {
			m.errNote = userMessage(err)
			return m, nil
		}
		m.navigate(session.RouteHome)
		m.pending += 3
		return m, tea.Batch(m.fetchUserInfo(), m.fetchProgress(), m.fetchRecommendations(), m.spinner.Tick)

	case searchDoneMsg:
		m.pending--
		if cmd, handled := m.fetchFailed(msg.err); handled {
			return m, cmd
		}
		m.search.Apply(msg.page)
		m.cursor = 0
		return m, nil

	case enrollDoneMsg:
		m.pending--
		if cmd, handled := m.fetchFailed(msg.err); handled {
			return m, cmd
		}
		m.session.RecordEnrollment(msg.course)
		m.notice = fmt.Sprintf("Enrolled in %s.", msg.course.Title)
		enrolled := make([]models.Course, 0, len(m.session.Enrolled()))
		for _, c := range m.session.Enrolled() {
			enrolled = append(enrolled, c.Course)
		}
		m.pending++
		return m, tea.Batch(m.enrolledDeck.SetItems(enrolled), m.fetchProgress())

	case quizDoneMsg:
		m.pending--
		if cmd, handled := m.fetchFailed(msg.err); handled {
			return m, cmd
		}
		m.quizResults = msg.courses
		m.view = QuizResultsView
		return m, nil
	}

	return m, nil
}

// fetchFailed routes a failed fetch. A rejected session tears down auth
// state and lands on login with a notice; any other error is shown in
// place.
func (m *Model) fetchFailed(err error) (tea.Cmd, bool) {
	if err == nil {
		return nil, false
	}
	if m.session.HandleAuthError(err) {
		m.notice = "Your session has expired. Please log in again."
		m.profile = nil
		m.quizResults = nil
		m.navigate(session.RouteLogin)
		return tea.Batch(m.enrolledDeck.SetItems(nil), m.recommendedDeck.SetItems(nil)), true
	}
	m.errNote = userMessage(err)
	return nil, true
}

// userMessage renders an error for display. Backend validation text is
// surfaced verbatim; transport failures collapse to a generic line.
func userMessage(err error) string {
	var statusErr *services.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	if errors.Is(err, shared.ErrNotAuthenticated) {
		return "Please log in first."
	}
	return "Something went wrong talking to the server. Please try again."
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case LoginView:
		return m.handleLoginKeys(msg)
	case RegisterView:
		return m.handleRegisterKeys(msg)
	case HomeView:
		return m.handleHomeKeys(msg)
	case ExploreView:
		return m.handleExploreKeys(msg)
	case ProfileView:
		return m.handleProfileKeys(msg)
	case QuestionnaireView:
		return m.handleQuizKeys(msg)
	case QuizResultsView:
		return m.handleQuizResultKeys(msg)
	}
	return m, nil
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.login.Advance()
		return m, nil
	case "ctrl+r":
		m.navigate(session.RouteRegister)
		return m, nil
	case "enter":
		if !m.login.Filled() {
			m.errNote = "Email and password are required."
			return m, nil
		}
		values := m.login.Values()
		m.pending++
		return m, tea.Batch(m.doLogin(values[0], values[1]), m.spinner.Tick)
	}
	return m, m.login.Update(msg)
}

func (m *Model) handleRegisterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.register.Advance()
		return m, nil
	case "esc":
		m.navigate(session.RouteLogin)
		return m, nil
	case "enter":
		if !m.register.Filled() {
			m.errNote = "All fields are required."
			return m, nil
		}
		values := m.register.Values()
		m.pending++
		return m, tea.Batch(m.doRegister(values[0], values[1], values[2]), m.spinner.Tick)
	}
	return m, m.register.Update(msg)
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.decks()[m.focusDeck].SetFocus(false)
		m.focusDeck = (m.focusDeck + 1) % len(m.decks())
		m.decks()[m.focusDeck].SetFocus(true)
		return m, nil
	case "left", "h":
		return m, m.decks()[m.focusDeck].Prev()
	case "right", "l":
		return m, m.decks()[m.focusDeck].Next()
	case "e":
		course, ok := m.decks()[m.focusDeck].Current()
		if !ok {
			return m, nil
		}
		m.pending++
		return m, tea.Batch(m.doEnroll(course), m.spinner.Tick)
	case "/":
		m.navigate(session.RouteExplore)
		m.searchInput.Focus()
		return m, nil
	case "p":
		return m, m.openProfile()
	case "ctrl+l":
		return m, m.doLogout()
	}
	return m, nil
}

func (m *Model) handleExploreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.Blur()
		m.navigate(session.RouteHome)
		return m, nil
	case "tab":
		if m.searchInput.Focused() {
			m.searchInput.Blur()
		} else {
			m.searchInput.Focus()
		}
		return m, nil
	case "enter":
		m.search.SetQuery(strings.TrimSpace(m.searchInput.Value()))
		m.search.Commit()
		m.pending++
		return m, tea.Batch(m.doSearch(1), m.spinner.Tick)
	}

	if !m.searchInput.Focused() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "1", "2", "3", "4":
			cats := models.Categories()
			m.search.ToggleCategory(cats[int(msg.String()[0]-'1')])
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.search.Results())-1 {
				m.cursor++
			}
			return m, nil
		case "e":
			results := m.search.Results()
			if m.cursor >= len(results) {
				return m, nil
			}
			m.pending++
			return m, tea.Batch(m.doEnroll(results[m.cursor]), m.spinner.Tick)
		case "left", "h":
			if m.search.CanPrev() {
				m.pending++
				return m, tea.Batch(m.doSearch(m.search.Page()-1), m.spinner.Tick)
			}
			return m, nil
		case "right", "l":
			if m.search.CanNext() {
				m.pending++
				return m, tea.Batch(m.doSearch(m.search.Page()+1), m.spinner.Tick)
			}
			return m, nil
		case "?":
			m.quiz.Reset()
			m.view = QuestionnaireView
			return m, nil
		case "ctrl+l":
			return m, m.doLogout()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "g":
		m.navigate(session.RouteHome)
		return m, nil
	case "ctrl+l":
		return m, m.doLogout()
	}
	return m, nil
}

func (m *Model) handleQuizKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.quiz.Back() {
			m.navigate(session.RouteExplore)
		}
		return m, nil
	case "up", "k":
		m.quiz.Up()
		return m, nil
	case "down", "j":
		m.quiz.Down()
		return m, nil
	case "enter":
		if m.quiz.Select() {
			m.pending++
			return m, tea.Batch(m.doQuiz(m.quiz.Answers()), m.spinner.Tick)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleQuizResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.quizResults = nil
		m.navigate(session.RouteExplore)
		return m, nil
	case "r":
		m.quiz.Reset()
		m.view = QuestionnaireView
		return m, nil
	}
	return m, nil
}

func (m *Model) openProfile() tea.Cmd {
	m.navigate(session.RouteProfile)
	m.pending++
	return tea.Batch(func() tea.Msg {
		profile, err := m.api.Profile(m.ctx)
		return profileFetchedMsg{profile: profile, err: err}
	}, m.spinner.Tick)
}

func (m *Model) doLogout() tea.Cmd {
	m.session.Logout()
	m.profile = nil
	m.quizResults = nil
	m.notice = "Logged out."
	m.navigate(session.RouteLogin)
	return tea.Batch(m.enrolledDeck.SetItems(nil), m.recommendedDeck.SetItems(nil))
}

func (m *Model) fetchUserInfo() tea.Cmd {
	return func() tea.Msg {
		info, err := m.api.UserInfo(m.ctx)
		return userInfoFetchedMsg{info: info, err: err}
	}
}

func (m *Model) fetchProgress() tea.Cmd {
	return func() tea.Msg {
		report, err := m.api.Progress(m.ctx)
		return progressFetchedMsg{report: report, err: err}
	}
}

func (m *Model) fetchRecommendations() tea.Cmd {
	return func() tea.Msg {
		courses, err := m.api.Recommendations(m.ctx)
		return recommendationsFetchedMsg{courses: courses, err: err}
	}
}

// The do* commands below only talk to the backend; every mutation of
// the session or search controllers happens back in Update when the
// resulting message is applied, so the event loop never races its own
// renders.

func (m *Model) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := m.api.Login(m.ctx, email, password)
		return loginDoneMsg{token: token, err: err}
	}
}

func (m *Model) doRegister(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := m.api.Register(m.ctx, username, email, password)
		return registerDoneMsg{token: token, err: err}
	}
}

func (m *Model) doSearch(page int) tea.Cmd {
	query := m.search.Committed()
	categories := m.search.Selected()
	return func() tea.Msg {
		result, err := m.api.Search(m.ctx, query, page, categories)
		return searchDoneMsg{page: result, err: err}
	}
}

func (m *Model) doEnroll(course models.Course) tea.Cmd {
	return func() tea.Msg {
		return enrollDoneMsg{course: course, err: m.api.Enroll(m.ctx, course)}
	}
}

func (m *Model) doQuiz(answers models.QuestionnaireAnswers) tea.Cmd {
	return func() tea.Msg {
		courses, err := m.api.QuestionnaireRecommend(m.ctx, answers)
		return quizDoneMsg{courses: courses, err: err}
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case LoginView:
		body = m.renderLogin()
	case RegisterView:
		body = m.renderRegister()
	case HomeView:
		body = m.renderHome()
	case ExploreView:
		body = m.renderExplore()
	case ProfileView:
		body = m.renderProfile()
	case QuestionnaireView:
		body = m.quiz.View()
	case QuizResultsView:
		body = m.renderQuizResults()
	}

	var banners []string
	if m.pending > 0 {
		banners = append(banners, fmt.Sprintf("%s Loading...", m.spinner.View()))
	}
	if m.notice != "" {
		banners = append(banners, styles.warn.Render(m.notice))
	}
	if m.errNote != "" {
		banners = append(banners, styles.err.Render(m.errNote))
	}

	if len(banners) == 0 {
		return body
	}
	return fmt.Sprintf("%s\n\n%s", strings.Join(banners, "\n"), body)
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Log in to CourseDeck")
	loginKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "log in"),
	)
	helpView := m.help.ShortHelpView([]key.Binding{loginKey, m.keys.tab, m.keys.register})
	return fmt.Sprintf("%s\n%s\n%s", title, m.login.View(), helpView)
}

func (m *Model) renderRegister() string {
	title := styles.title.Render("Create your account")
	createKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create account"),
	)
	helpView := m.help.ShortHelpView([]key.Binding{createKey, m.keys.tab, m.keys.back})
	return fmt.Sprintf("%s\n%s\n%s", title, m.register.View(), helpView)
}

func (m *Model) renderHome() string {
	welcome := "Welcome back!"
	if name := m.session.Username(); name != "" {
		welcome = fmt.Sprintf("Welcome back, %s!", name)
	}

	deckKey := key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch deck"),
	)
	helpKeys := []key.Binding{m.keys.left, m.keys.right, deckKey, m.keys.enroll, m.keys.search, m.keys.profile, m.keys.logout, m.keys.quit}

	sections := []string{
		styles.title.Render(welcome),
		m.enrolledDeck.View(),
		m.recommendedDeck.View(),
		m.trendingDeck.View(),
		m.help.ShortHelpView(helpKeys),
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderExplore() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", styles.title.Render("Find Courses"))
	fmt.Fprintf(&b, "%s\n\n", m.searchInput.View())

	var filters []string
	for i, cat := range models.Categories() {
		label := fmt.Sprintf("%d %s", i+1, cat)
		if m.search.Active(cat) {
			label = styles.ok.Render("[" + label + "]")
		} else {
			label = styles.help.Render(label)
		}
		filters = append(filters, label)
	}
	fmt.Fprintf(&b, "%s\n\n", strings.Join(filters, "  "))

	switch {
	case !m.search.Searched():
		fmt.Fprintf(&b, "%s\n", styles.help.Render("Type a query and press enter. Press ? if you don't know what to choose."))
	case len(m.search.Results()) == 0:
		fmt.Fprintf(&b, "%s\n", styles.help.Render("No courses found."))
	default:
		for i, course := range m.search.Results() {
			marker := "  "
			if i == m.cursor {
				marker = styles.ok.Render("▸ ")
			}
			fmt.Fprintf(&b, "%s%s %s\n    %s\n", marker, styles.ok.Render(course.Title), styles.warn.Render(string(course.Category)), truncate(course.ShortIntro, 70))
		}
		fmt.Fprintf(&b, "\n%s", styles.help.Render(fmt.Sprintf("Page %d of %d", m.search.Page(), m.search.TotalPages())))
		if m.search.CanPrev() || m.search.CanNext() {
			fmt.Fprintf(&b, " %s", styles.help.Render("(←/→ to page)"))
		}
		b.WriteString("\n")
	}

	inputKey := key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle input"),
	)
	helpKeys := []key.Binding{inputKey, m.keys.filter, m.keys.enroll, m.keys.quiz, m.keys.back}
	fmt.Fprintf(&b, "\n%s", m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderProfile() string {
	if m.profile == nil {
		return styles.title.Render("Profile")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styles.title.Render(m.profile.Username))
	fmt.Fprintf(&b, "%s\n\n", styles.help.Render(m.profile.Email))

	report := m.session.Progress()
	if report.Total() == 0 {
		report = models.TallyCategories(m.profile.EnrolledCourses)
	}
	if total := report.Total(); total > 0 {
		fmt.Fprintf(&b, "%s\n", styles.warn.Render("Learning style distribution"))
		for _, cat := range models.Categories() {
			share := float64(report.Count(cat)) / float64(total)
			fmt.Fprintf(&b, "%-12s %s\n", cat, m.chart.ViewAs(share))
		}
		b.WriteString("\n")
	}

	ongoing, completed := m.profile.Split()
	fmt.Fprintf(&b, "%s\n", styles.warn.Render(fmt.Sprintf("Ongoing (%d)", len(ongoing))))
	for _, c := range ongoing {
		fmt.Fprintf(&b, "  %s\n", c.Title)
	}
	fmt.Fprintf(&b, "\n%s\n", styles.warn.Render(fmt.Sprintf("Completed (%d)", len(completed))))
	for _, c := range completed {
		line := c.Title
		if c.CertificateLink != "" {
			line = fmt.Sprintf("%s  %s", line, styles.help.Render(c.CertificateLink))
		}
		fmt.Fprintf(&b, "  %s\n", line)
	}

	fmt.Fprintf(&b, "\n%s", m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.logout, m.keys.quit}))
	return b.String()
}

func (m *Model) renderQuizResults() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styles.title.Render("Courses picked for you"))

	if len(m.quizResults) == 0 {
		fmt.Fprintf(&b, "%s\n", styles.help.Render("No matches. Press r to try different answers."))
	} else {
		for _, course := range m.quizResults {
			fmt.Fprintf(&b, "%s %s\n  %s\n", styles.ok.Render(course.Title), styles.warn.Render(string(course.Category)), truncate(course.ShortIntro, 70))
		}
	}

	fmt.Fprintf(&b, "\n%s", m.help.ShortHelpView([]key.Binding{m.keys.retake, m.keys.back}))
	return b.String()
}
