package analytics

import (
	"net/http"
	"testing"

	users_middleware "matchme/internal/features/users/middleware"
	users_testing "matchme/internal/features/users/testing"
	test_utils "matchme/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRouter(f *serviceFixture, verifier *users_testing.StaticTokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("/api")
	protected.Use(users_middleware.AuthMiddleware(verifier))
	(&AnalyticsController{analyticsService: f.service}).RegisterRoutes(protected)

	return router
}

func Test_BarList_WithoutSession_ReturnsUnauthorized(t *testing.T) {
	router := createTestRouter(newServiceFixture(), users_testing.NewStaticTokenVerifier())

	test_utils.MakeGetRequest(t, router, "/api/bar-list?id="+uuid.NewString()+"&type=os&table=profile_visits", "",
		http.StatusUnauthorized)
}

func Test_BarList_MissingParams_ReturnsBadRequest(t *testing.T) {
	verifier := users_testing.NewStaticTokenVerifier()
	router := createTestRouter(newServiceFixture(), verifier)
	user := users_testing.NewTestUser("alice")

	test_utils.MakeGetRequest(t, router, "/api/bar-list?type=os&table=profile_visits", verifier.Issue(user),
		http.StatusBadRequest)
	test_utils.MakeGetRequest(t, router, "/api/analytics-visits?id="+user.ID.String()+"&table=profile_visits",
		verifier.Issue(user), http.StatusBadRequest)
}

func Test_BarList_OwnProfile_ReturnsItems(t *testing.T) {
	verifier := users_testing.NewStaticTokenVerifier()
	router := createTestRouter(newServiceFixture(), verifier)
	user := users_testing.NewTestUser("alice")

	var items []BarListItemDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/api/bar-list?id="+user.ID.String()+"&type=country&table=profile_visits",
		verifier.Issue(user), http.StatusOK, &items)

	require.Len(t, items, 2)
	assert.Equal(t, "US", items[0].Label)
	assert.Equal(t, 75.0, items[0].Percentage)
}

func Test_BarList_ForeignProfile_ReturnsNotFound(t *testing.T) {
	verifier := users_testing.NewStaticTokenVerifier()
	router := createTestRouter(newServiceFixture(), verifier)

	test_utils.MakeGetRequest(t, router,
		"/api/bar-list?id="+uuid.NewString()+"&type=country&table=profile_visits",
		verifier.Issue(users_testing.NewTestUser("alice")), http.StatusNotFound)
}

func Test_Visits_WhenStoreFails_ReturnsInternalServerError(t *testing.T) {
	f := newServiceFixture()
	f.visits.err = assert.AnError
	verifier := users_testing.NewStaticTokenVerifier()
	router := createTestRouter(f, verifier)
	user := users_testing.NewTestUser("alice")

	test_utils.MakeGetRequest(t, router,
		"/api/analytics-visits?id="+user.ID.String()+"&type=month&table=profile_visits",
		verifier.Issue(user), http.StatusInternalServerError)
}

func Test_ProfileViews_MissingSlug_ReturnsBadRequest(t *testing.T) {
	verifier := users_testing.NewStaticTokenVerifier()
	router := createTestRouter(newServiceFixture(), verifier)

	test_utils.MakeGetRequest(t, router, "/api/profile-views?dateRange=7d",
		verifier.Issue(users_testing.NewTestUser("alice")), http.StatusBadRequest)
}

func Test_ProfileViews_ProviderFailure_ReturnsInternalServerError(t *testing.T) {
	f := newServiceFixture()
	f.provider.err = ErrProviderUnavailable
	verifier := users_testing.NewStaticTokenVerifier()
	router := createTestRouter(f, verifier)

	test_utils.MakeGetRequest(t, router, "/api/profile-views?slug=alice&dateRange=7d",
		verifier.Issue(users_testing.NewTestUser("alice")), http.StatusInternalServerError)
}

func Test_ProfileViews_OwnProfile_ReturnsPoints(t *testing.T) {
	verifier := users_testing.NewStaticTokenVerifier()
	router := createTestRouter(newServiceFixture(), verifier)

	var response ProfileViewsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router, "/api/profile-views?slug=alice&dateRange=30d",
		verifier.Issue(users_testing.NewTestUser("alice")), http.StatusOK, &response)

	assert.Equal(t, int64(10), response.TotalViews)
	assert.Len(t, response.Points, 2)
}
