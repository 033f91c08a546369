package graphqlserver

import (
	"context"
	"encoding/json"
	"fmt"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"foundry.GO/graphql"
	gqlmodels "foundry.GO/graphql/models"
	"foundry.GO/graphql/registry"
	"foundry.GO/model/repository/report"
	"foundry.GO/model/repository/search"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	DB *gorm.DB
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{db: r.DB}
}

// QueryResolver implements Query fields. Delegates to the repositories.
type QueryResolver struct {
	db *gorm.DB
}

// SearchArgs matches the search query arguments.
type SearchArgs struct {
	Type    string
	Term    *string
	Filters *string
}

func (r *QueryResolver) Search(ctx context.Context, args SearchArgs) (*gqlmodels.SearchResult, error) {
	kind, ok := search.ParseKind(args.Type)
	if !ok {
		return nil, fmt.Errorf("invalid search type: %s", args.Type)
	}
	term := ""
	if args.Term != nil {
		term = *args.Term
	}
	filters := map[string]string{}
	if args.Filters != nil && *args.Filters != "" {
		if err := json.Unmarshal([]byte(*args.Filters), &filters); err != nil {
			return nil, fmt.Errorf("filters must be a JSON object of strings: %w", err)
		}
	}
	repo := search.GetSearchRepository(r.db)
	results, err := repo.Search(ctx, kind, term, filters)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return nil, err
	}
	count, err := repo.Count(ctx, kind, term, filters)
	if err != nil {
		return nil, err
	}
	return &gqlmodels.SearchResult{Count: int32(count), Records: string(raw)}, nil
}

func (r *QueryResolver) DashboardStats(ctx context.Context) (*gqlmodels.DashboardStats, error) {
	stats, err := report.GetReportRepository(r.db).Stats(ctx)
	if err != nil {
		return nil, err
	}
	return gqlmodels.DashboardStatsFromReport(stats), nil
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
