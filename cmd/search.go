package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Mahak-Sharma/Resume-to-job/internal/dispatch"
	"github.com/Mahak-Sharma/Resume-to-job/internal/jobsearch"
	"github.com/Mahak-Sharma/Resume-to-job/internal/logger"
	"github.com/Mahak-Sharma/Resume-to-job/internal/provider"
	"github.com/Mahak-Sharma/Resume-to-job/internal/provider/adzuna"
	"github.com/Mahak-Sharma/Resume-to-job/internal/provider/aggregator"
	"github.com/Mahak-Sharma/Resume-to-job/internal/recommend"
	"github.com/Mahak-Sharma/Resume-to-job/internal/recommend/gemini"
	"github.com/Mahak-Sharma/Resume-to-job/internal/resume"
	"github.com/Mahak-Sharma/Resume-to-job/internal/secrets"
	"github.com/Mahak-Sharma/Resume-to-job/internal/skills"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptNextPage        = "Next page"
	PromptPreviousPage    = "Previous page"
	PromptReportByCompany = "Report by company"
	PromptDumpToFile      = "Dump jobs to file"
	PromptQuit            = "Quit"

	defaultPageSize = 50
)

var errExit = errors.New("exit requested")

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job listings matching the resume skills and selected skills",
	Run: func(cmd *cobra.Command, _ []string) {
		runSearch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringArrayP("skill", "s", nil, "additional manual skill, repeatable")
	searchCmd.Flags().BoolP("no-input", "y", false, "print the first page and exit without prompting")
}

// runSearch is the main command for the cli.
func runSearch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting resume-to-job", zap.String("version", version))

	if config == nil {
		logger.Fatal("config is required")
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	analysis, selection, err := loadInputs(config)
	if err != nil {
		logger.Fatal("loading input documents", zap.Error(err))
	}

	manual := selection.Skills
	if extra, err := cmd.Flags().GetStringArray("skill"); err == nil {
		manual = append(manual, extra...)
	}

	set := skills.Build(analysis.Skills(), manual)
	logger.Info("building skill set",
		zap.Int("extracted", len(analysis.Skills())),
		zap.Int("manual", len(manual)),
		zap.Int("unique", set.Len()),
	)

	maxTerms := dispatch.DefaultMaxTerms
	if config.Search != nil && config.Search.MaxTerms > 0 {
		maxTerms = config.Search.MaxTerms
	}

	titles := analysis.RecommendedTitles(maxTerms)
	if len(titles) == 0 {
		titles = recommendTitles(ctx, config, set, maxTerms, logger)
	}

	prov, fanOut, err := buildProvider(config, logger)
	if err != nil {
		logger.Fatal("building search provider", zap.Error(err))
	}

	dispatcherCfg := &dispatch.Config{FanOut: fanOut, MaxTerms: maxTerms}
	if config.Search != nil {
		dispatcherCfg.PerPage = config.Search.ResultsPerPage
		dispatcherCfg.Concurrency = config.Search.Concurrency
	}

	dispatcher := dispatch.New(prov, dispatcherCfg, logger)

	records, totalResults, err := dispatcher.Dispatch(ctx, set, titles)
	if err != nil {
		if errors.Is(err, dispatch.ErrNoSearchTerms) {
			logger.Error("nothing to search for",
				zap.Error(err),
				zap.String("hint", "upload a resume analysis, add skills to the skills file or pass --skill"),
			)
			return
		}
		logger.Fatal("dispatching search", zap.Error(err))
	}

	result := jobsearch.Assemble(records, set, totalResults)

	logger.Info("search completed",
		zap.Int("matching_jobs", result.Jobs.Len()),
		zap.Int("total_results", result.TotalResults),
	)

	if result.Jobs.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs found"))
		return
	}

	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	noInput, _ := cmd.Flags().GetBool("no-input")
	if err := browse(result, pageSize, noInput, logger); err != nil && !errors.Is(err, errExit) {
		logger.Fatal("exiting", zap.Error(err))
	}
}

func loadInputs(config *Config) (*resume.Analysis, *resume.Selection, error) {
	analysisFile := ""
	skillsFile := ""
	if config.Inputs != nil {
		analysisFile = config.Inputs.AnalysisFile
		skillsFile = config.Inputs.SkillsFile
	}

	analysis, err := resume.AnalysisFromFile(analysisFile)
	if err != nil {
		return nil, nil, fmt.Errorf("analysis file: %w", err)
	}

	selection, err := resume.SelectionFromFile(skillsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("skills file: %w", err)
	}

	return analysis, selection, nil
}

// recommendTitles asks the optional recommender for job titles when the
// analysis carried none. Failures degrade to skill-based search.
func recommendTitles(ctx context.Context, config *Config, set *skills.Set, maxTerms int, log *zap.Logger) []string {
	if config.Recommend == nil || !config.Recommend.Enabled || set.Len() == 0 {
		return nil
	}

	recommender, err := newRecommender(ctx, config.Recommend, log)
	if err != nil {
		log.Warn("skipping title recommendation", zap.Error(err))
		return nil
	}

	jobs, err := recommender.Recommend(ctx, set.Values())
	if err != nil {
		log.Warn("title recommendation failed, falling back to skills", zap.Error(err))
		return nil
	}

	titles := make([]string, 0, maxTerms)
	for _, job := range jobs {
		titles = append(titles, job.Title)
		if len(titles) == maxTerms {
			break
		}
	}

	log.Info("recommended job titles", zap.Strings("titles", titles))
	return titles
}

func newRecommender(ctx context.Context, config *RecommendConfig, log *zap.Logger) (recommend.Recommender, error) {
	if config.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when recommendation is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set recommend.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithFields(log, logger.StringFields(
		logger.StringField{Key: logger.FieldModel, Value: config.Gemini.Model},
	)...)

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model, config.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewRecommender(generator, config.Gemini.MaxTitles, 0, genLogger), nil
}

// buildProvider selects the search backend from configuration. The legacy
// adzuna backend implies per-skill fan-out dispatch.
func buildProvider(config *Config, log *zap.Logger) (provider.Provider, bool, error) {
	name := strings.TrimSpace(strings.ToLower(config.Provider))
	if name == "" {
		name = "aggregator"
	}

	provLogger := logger.WithFields(log, logger.StringFields(
		logger.StringField{Key: logger.FieldProvider, Value: name},
	)...)

	switch name {
	case "aggregator":
		if config.Aggregator == nil || strings.TrimSpace(config.Aggregator.Endpoint) == "" {
			return nil, false, fmt.Errorf("aggregator endpoint is required")
		}
		return aggregator.New(provLogger, config.Aggregator.Endpoint), false, nil

	case "adzuna":
		if config.Adzuna == nil {
			return nil, false, fmt.Errorf("adzuna configuration is required")
		}

		appID, err := secrets.Load(secrets.Source{
			Name: "adzuna app id",
			File: config.Adzuna.AppIDFile,
			Env:  "ADZUNA_APP_ID",
		})
		if err != nil {
			return nil, false, err
		}

		appKey, err := secrets.Load(secrets.Source{
			Name: "adzuna app key",
			File: config.Adzuna.AppKeyFile,
			Env:  "ADZUNA_APP_KEY",
		})
		if err != nil {
			return nil, false, err
		}

		client := adzuna.New(provLogger, appID, appKey)
		if country := strings.TrimSpace(config.Adzuna.Country); country != "" {
			client.Country = country
		}
		return client, true, nil

	default:
		return nil, false, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}

// browse pages through the ranked result. Page navigation is a pure re-slice;
// no network activity happens after the dispatch.
func browse(result *jobsearch.Result, pageSize int, noInput bool, logger *zap.Logger) error {
	page := 1
	pages := jobsearch.Pages(result.Jobs.Len(), pageSize)

	printPage(result, pageSize, page)

	if noInput {
		return nil
	}

	prompt := promptui.Select{
		Label: "Action",
		Items: []string{PromptNextPage, PromptPreviousPage, PromptReportByCompany, PromptDumpToFile, PromptQuit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptNextPage:
			if page < pages {
				page++
			}
			printPage(result, pageSize, page)
		case PromptPreviousPage:
			if page > 1 {
				page--
			}
			printPage(result, pageSize, page)
		case PromptReportByCompany:
			pretty, _ := json.MarshalIndent(result.Jobs.ReportByCompany(), "", "  ")
			fmt.Println(string(pretty))
		case PromptDumpToFile:
			filename, err := result.Jobs.DumpToTmpFile()
			if err != nil {
				return fmt.Errorf("dump results to file: %w", err)
			}
			logger.Info("dumping result to file", zap.String("filename", filename))
		case PromptQuit:
			logger.Info("exiting", zap.String("reason", "got quit from prompt"))
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func printPage(result *jobsearch.Result, pageSize, page int) {
	jobs := result.Page(pageSize, page)
	pages := jobsearch.Pages(result.Jobs.Len(), pageSize)

	fmt.Printf("\nFound %d matching positions out of %d total jobs, page %d/%d\n\n",
		result.Jobs.Len(), result.TotalResults, page, pages)

	offset := (page - 1) * pageSize
	for i, job := range jobs {
		fmt.Printf("%3d. [%3d%%] %s / %s\n", offset+i+1, job.SkillMatchScore, job.Title, job.CompanyName)
		if job.Location != "" {
			fmt.Printf("     %s\n", job.Location)
		}
		if len(job.MatchingSkills) > 0 {
			fmt.Printf("     matching: %s\n", strings.Join(job.MatchingSkills, ", "))
		}
		if !job.CreatedAt.IsZero() {
			fmt.Printf("     posted: %s\n", job.CreatedAt.Format("2006-01-02"))
		}
		if job.ApplyLink != "" {
			fmt.Printf("     apply: %s\n", job.ApplyLink)
		}
	}
}
