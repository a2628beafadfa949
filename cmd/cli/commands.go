package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	email      string
	password   string
	firstName  string
	lastName   string
	lines      []string
	edits      []string
	picks      []string
	notes      string
	difficulty int
	date       string
	fromDate   string
	toDate     string
	painLevel  int
	bodyPart   string
	medName    string
	medDosage  string
	medTime    string
	content    string

	rootCmd = &cobra.Command{
		Use:   "vitalmotion",
		Short: "A cli companion for the VitalMotion workout and pain tracker",
		Long: `VitalMotion is a workout and physical-therapy tracker. This cli
manages workout templates, logs live sessions against them, records pain,
journal and medication notes, and renders history and chart data.`,
	}

	// --- Identity ---
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		Run:   runLogin,
	}
	signupCmd = &cobra.Command{
		Use:   "signup",
		Short: "Register a new account, including first-time setup",
		Run:   runSignup,
	}
	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		Run:   runLogout,
	}

	// --- Workout templates ---
	workoutsCmd = &cobra.Command{
		Use:   "workouts",
		Short: "Manage stored workout templates",
	}
	workoutsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List stored workout templates",
		Run:   runWorkoutsList,
	}
	workoutsShowCmd = &cobra.Command{
		Use:   "show [workoutId]",
		Short: "Show a template with exercise names resolved",
		Args:  cobra.ExactArgs(1),
		Run:   runWorkoutsShow,
	}
	workoutsCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a template from encoded exercise lines",
		Run:   runWorkoutsCreate,
	}
	workoutsUpdateCmd = &cobra.Command{
		Use:   "update [workoutId]",
		Short: "Replace a template's exercise lines",
		Args:  cobra.ExactArgs(1),
		Run:   runWorkoutsUpdate,
	}
	workoutsDeleteCmd = &cobra.Command{
		Use:   "delete [workoutId]",
		Short: "Delete a template and its completed records",
		Args:  cobra.ExactArgs(1),
		Run:   runWorkoutsDelete,
	}

	// --- Live session ---
	logCmd = &cobra.Command{
		Use:   "log [workoutId]",
		Short: "Log a completed session, starting from a template or from scratch",
		Args:  cobra.MaximumNArgs(1),
		Run:   runLog,
	}

	// --- History and charts ---
	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Show the merged workout and pain timeline, newest first",
		Run:   runHistory,
	}
	chartsCmd = &cobra.Command{
		Use:   "charts",
		Short: "Render chart data over a date range",
	}
	chartsPainCmd = &cobra.Command{
		Use:   "pain",
		Short: "Average pain level per body part per day",
		Run:   runChartsPain,
	}
	chartsWorkoutsCmd = &cobra.Command{
		Use:   "workouts",
		Short: "Workouts per rolling 7-day window",
		Run:   runChartsWorkouts,
	}

	// --- Pain notes ---
	painCmd = &cobra.Command{
		Use:   "pain",
		Short: "Manage pain notes",
	}
	painListCmd = &cobra.Command{
		Use:   "list",
		Short: "List pain notes",
		Run:   runPainList,
	}
	painAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Record a pain note (date defaults to today)",
		Run:   runPainAdd,
	}
	painEditCmd = &cobra.Command{
		Use:   "edit [hashId]",
		Short: "Update the level and body part of a pain note",
		Args:  cobra.ExactArgs(1),
		Run:   runPainEdit,
	}
	painRemoveCmd = &cobra.Command{
		Use:   "remove [hashId]",
		Short: "Remove a pain note",
		Args:  cobra.ExactArgs(1),
		Run:   runPainRemove,
	}

	// --- Journals ---
	journalCmd = &cobra.Command{
		Use:   "journal",
		Short: "Manage journal entries",
	}
	journalListCmd = &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Run:   runJournalList,
	}
	journalAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Write a journal entry (date defaults to today)",
		Run:   runJournalAdd,
	}
	journalRemoveCmd = &cobra.Command{
		Use:   "remove [journalId]",
		Short: "Remove a journal entry",
		Args:  cobra.ExactArgs(1),
		Run:   runJournalRemove,
	}

	// --- Medications ---
	medsCmd = &cobra.Command{
		Use:   "meds",
		Short: "Manage medication notes",
	}
	medsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List medication notes",
		Run:   runMedsList,
	}
	medsAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Record a medication note (date defaults to today)",
		Run:   runMedsAdd,
	}
	medsRemoveCmd = &cobra.Command{
		Use:   "remove [medicationId]",
		Short: "Remove a medication note",
		Args:  cobra.ExactArgs(1),
		Run:   runMedsRemove,
	}

	// --- Recommendation ---
	recommendCmd = &cobra.Command{
		Use:   "recommend",
		Short: "Suggest the next muscle group to train, with an intensity hint",
		Run:   runRecommend,
	}
)

func init() {
	loginCmd.Flags().StringVar(&email, "email", "", "account email")
	loginCmd.Flags().StringVar(&password, "password", "", "account password")
	signupCmd.Flags().StringVar(&email, "email", "", "account email")
	signupCmd.Flags().StringVar(&password, "password", "", "account password")
	signupCmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	signupCmd.Flags().StringVar(&lastName, "last-name", "", "last name")

	workoutsCreateCmd.Flags().StringArrayVar(&lines, "line", nil,
		`exercise line, "sets|reps|weight|exerciseId" (repeatable)`)
	workoutsUpdateCmd.Flags().StringArrayVar(&lines, "line", nil,
		`exercise line, "sets|reps|weight|exerciseId" (repeatable)`)
	workoutsCmd.AddCommand(workoutsListCmd, workoutsShowCmd, workoutsCreateCmd,
		workoutsUpdateCmd, workoutsDeleteCmd)

	logCmd.Flags().StringArrayVar(&edits, "set", nil,
		`row edit, "index:field=value" with field sets|reps|weight (repeatable)`)
	logCmd.Flags().StringArrayVar(&picks, "exercise", nil,
		`row exercise selection, "index=exerciseId" (repeatable)`)
	logCmd.Flags().StringVar(&notes, "notes", "", "session notes")
	logCmd.Flags().IntVar(&difficulty, "difficulty", 1, "perceived difficulty, 1 to 10")
	logCmd.Flags().StringVar(&date, "date", "", "completion date, YYYY-MM-DD (defaults to today)")

	chartsPainCmd.Flags().StringVar(&fromDate, "from", "", "range start, YYYY-MM-DD")
	chartsPainCmd.Flags().StringVar(&toDate, "to", "", "range end, YYYY-MM-DD")
	chartsWorkoutsCmd.Flags().StringVar(&fromDate, "from", "", "range start, YYYY-MM-DD")
	chartsWorkoutsCmd.Flags().StringVar(&toDate, "to", "", "range end, YYYY-MM-DD")
	chartsCmd.AddCommand(chartsPainCmd, chartsWorkoutsCmd)

	painAddCmd.Flags().IntVar(&painLevel, "level", 0, "pain level, 0 to 10")
	painAddCmd.Flags().StringVar(&bodyPart, "body-part", "", "affected body part")
	painAddCmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD (defaults to today)")
	painEditCmd.Flags().IntVar(&painLevel, "level", 0, "pain level, 0 to 10")
	painEditCmd.Flags().StringVar(&bodyPart, "body-part", "", "affected body part")
	painCmd.AddCommand(painListCmd, painAddCmd, painEditCmd, painRemoveCmd)

	journalAddCmd.Flags().StringVar(&content, "content", "", "entry text")
	journalAddCmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD (defaults to today)")
	journalCmd.AddCommand(journalListCmd, journalAddCmd, journalRemoveCmd)

	medsAddCmd.Flags().StringVar(&medName, "name", "", "medication name")
	medsAddCmd.Flags().StringVar(&medDosage, "dosage", "", "dosage")
	medsAddCmd.Flags().StringVar(&medTime, "time", "", "time of day")
	medsAddCmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD (defaults to today)")
	medsCmd.AddCommand(medsListCmd, medsAddCmd, medsRemoveCmd)

	recommendCmd.Flags().StringArrayVar(&picks, "exercise", nil,
		"exercise id already in the draft (repeatable)")

	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, workoutsCmd, logCmd,
		historyCmd, chartsCmd, painCmd, journalCmd, medsCmd, recommendCmd)
}
