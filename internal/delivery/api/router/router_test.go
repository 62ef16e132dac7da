package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "bakeandtaste/internal/delivery/api/middleware"
	"bakeandtaste/internal/delivery/api/router/handler"
	"bakeandtaste/internal/delivery/api/validator"
	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/service"
	mockservice "bakeandtaste/internal/mocks/service"
	mockusecase "bakeandtaste/internal/mocks/usecase"
	"bakeandtaste/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e        *echo.Echo
	tokenSvc *mockservice.MockTokenService
	identity *mockusecase.MockIdentityUsecase
	account  *mockusecase.MockAccountUsecase
	catalog  *mockusecase.MockCatalogUsecase
	order    *mockusecase.MockOrderUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Count     *int   `json:"count"`
		Limit     *int   `json:"limit"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		e:        echo.New(),
		tokenSvc: mockservice.NewMockTokenService(t),
		identity: mockusecase.NewMockIdentityUsecase(t),
		account:  mockusecase.NewMockAccountUsecase(t),
		catalog:  mockusecase.NewMockCatalogUsecase(t),
		order:    mockusecase.NewMockOrderUsecase(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.e.Validator = validator.New()
	s.e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AccountUC: s.account, Logger: logger}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{IdentityUC: s.identity}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: s.catalog}),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: s.order}),
		SellerHandler:  handler.NewSellerHandler(handler.SellerHandlerParams{CatalogUC: s.catalog, OrderUC: s.order}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: s.tokenSvc,
			IdentityUC:   s.identity,
		}),
	}).RegisterRoutes(s.e)

	return s
}

// signedIn makes token resolve to profile.
func (s *testServer) signedIn(token string, profile *entity.Profile) {
	s.tokenSvc.EXPECT().ValidateToken(token).Return(&service.Claims{
		Role:             profile.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{Subject: profile.PrincipalID.String()},
	}, nil).Maybe()
	s.identity.EXPECT().ResolveProfile(mock.Anything, profile.PrincipalID).Return(profile, nil).Maybe()
}

func (s *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func newProfile(role entity.Role) *entity.Profile {
	return &entity.Profile{
		ID:          uuid.New(),
		PrincipalID: uuid.New(),
		Role:        role,
		DisplayName: "Tester",
		Email:       "tester@example.com",
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestPlaceOrder_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/api/v1/orders", `{}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
}

func TestPlaceOrder_RejectsInvalidToken(t *testing.T) {
	s := newTestServer(t)
	s.tokenSvc.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))

	rec, env := s.do(t, http.MethodPost, "/api/v1/orders", `{}`, "forged")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
}

func TestPlaceOrder_RejectsSeller(t *testing.T) {
	s := newTestServer(t)
	s.signedIn("seller-token", newProfile(entity.RoleSeller))

	rec, env := s.do(t, http.MethodPost, "/api/v1/orders", `{}`, "seller-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestPlaceOrder_Success(t *testing.T) {
	s := newTestServer(t)
	customer := newProfile(entity.RoleCustomer)
	s.signedIn("customer-token", customer)
	cakeID := uuid.New()

	s.order.EXPECT().
		PlaceOrder(mock.Anything, customer.ID, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.CakeID == cakeID && in.Quantity == 2 &&
				in.DeliveryType == entity.DeliveryTypePickup && in.PreferredTime != nil
		})).
		RunAndReturn(func(_ context.Context, customerID uuid.UUID, in *usecase.PlaceOrderInput) (*entity.Order, error) {
			return &entity.Order{
				ID:            uuid.New(),
				CustomerID:    customerID,
				CakeID:        in.CakeID,
				Quantity:      in.Quantity,
				TotalAmount:   decimal.RequireFromString("25.00"),
				DeliveryType:  in.DeliveryType,
				Status:        entity.OrderStatusPending,
				PaymentStatus: entity.PaymentStatusPending,
				CreatedAt:     time.Now(),
			}, nil
		})

	body := `{"cake_id":"` + cakeID.String() + `","quantity":2,"delivery_type":"pickup","preferred_time":"2026-10-20T10:00:00Z"}`
	rec, env := s.do(t, http.MethodPost, "/api/v1/orders", body, "customer-token")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got handler.OrderResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, entity.OrderStatusPending, got.Status)
	assert.True(t, decimal.RequireFromString("25").Equal(got.TotalAmount))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestPlaceOrder_ValidationFailure(t *testing.T) {
	s := newTestServer(t)
	s.signedIn("customer-token", newProfile(entity.RoleCustomer))

	for _, quantity := range []string{"0", "1001"} {
		body := `{"cake_id":"` + uuid.NewString() + `","quantity":` + quantity + `,"delivery_type":"pickup"}`
		rec, env := s.do(t, http.MethodPost, "/api/v1/orders", body, "customer-token")

		assert.Equal(t, http.StatusBadRequest, rec.Code, quantity)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Contains(t, env.Error.Details, "quantity")
	}
}

func TestPlaceOrder_CakeUnavailable(t *testing.T) {
	s := newTestServer(t)
	s.signedIn("customer-token", newProfile(entity.RoleCustomer))
	s.order.EXPECT().PlaceOrder(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrCakeUnavailable.WrapMessage("cake is not available"), "failed to place order"))

	body := `{"cake_id":"` + uuid.NewString() + `","quantity":1,"delivery_type":"pickup"}`
	rec, env := s.do(t, http.MethodPost, "/api/v1/orders", body, "customer-token")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "CAKE_UNAVAILABLE", env.Error.Code)
	assert.Equal(t, "cake is not available", env.Error.Details)
}

func TestPlaceOrder_DeliveryTypeCheckedAfterCakeLookup(t *testing.T) {
	s := newTestServer(t)
	s.signedIn("customer-token", newProfile(entity.RoleCustomer))
	s.order.EXPECT().
		PlaceOrder(mock.Anything, mock.Anything, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.DeliveryType == entity.DeliveryType("drone")
		})).
		Return(nil, domainerrors.ErrCakeUnavailable.WrapMessage("cake is missing or not available"))

	body := `{"cake_id":"` + uuid.NewString() + `","quantity":1,"delivery_type":"drone"}`
	rec, env := s.do(t, http.MethodPost, "/api/v1/orders", body, "customer-token")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "CAKE_UNAVAILABLE", env.Error.Code)
}

func TestListCakes_PassesFilter(t *testing.T) {
	s := newTestServer(t)
	bakeryID := uuid.New()
	listing := &entity.CakeListing{
		Cake:       entity.Cake{ID: uuid.New(), BakeryID: bakeryID, Name: "Opera", Price: decimal.NewFromInt(30), Available: true},
		BakeryName: "Crumbs",
	}

	s.catalog.EXPECT().
		ListAvailableCakes(mock.Anything, mock.MatchedBy(func(f entity.CakeFilter) bool {
			return f.Category == "Birthday" && f.BakeryID == bakeryID && f.Page.Limit == 5 && f.Page.Offset == 10
		})).
		Return([]*entity.CakeListing{listing}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/cakes?limit=5&offset=10&category=Birthday&bakery_id="+bakeryID.String(), "", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 1, *env.Meta.Count)
	var got []handler.CakeResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Crumbs", got[0].BakeryName)
	assert.Equal(t, []string{}, got[0].Allergens)
}

func TestListCakes_RejectsBadBakeryID(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/v1/cakes?bakery_id=nope", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestGetCake_NotFound(t *testing.T) {
	s := newTestServer(t)
	cakeID := uuid.New()
	s.catalog.EXPECT().GetAvailableCake(mock.Anything, cakeID).Return(nil, domainerrors.ErrCakeNotFound)

	rec, env := s.do(t, http.MethodGet, "/api/v1/cakes/"+cakeID.String(), "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CAKE_NOT_FOUND", env.Error.Code)
}

func TestGetBakeryQR(t *testing.T) {
	s := newTestServer(t)
	bakeryID := uuid.New()
	s.catalog.EXPECT().GenerateBakeryQR(mock.Anything, bakeryID).Return([]byte("\x89PNG"), nil)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/bakeries/"+bakeryID.String()+"/qr", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestSellerOrderStatus_InvalidTransition(t *testing.T) {
	s := newTestServer(t)
	seller := newProfile(entity.RoleSeller)
	s.signedIn("seller-token", seller)
	orderID := uuid.New()

	s.order.EXPECT().UpdateOrderStatus(mock.Anything, orderID, seller.ID, entity.OrderStatusCompleted).
		Return(nil, domainerrors.ErrInvalidTransition.WrapMessage("pending -> completed"))

	rec, env := s.do(t, http.MethodPatch, "/api/v1/seller/orders/"+orderID.String()+"/status", `{"status":"completed"}`, "seller-token")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
}

func TestSellerOrderStatus_RejectsCustomer(t *testing.T) {
	s := newTestServer(t)
	s.signedIn("customer-token", newProfile(entity.RoleCustomer))

	rec, env := s.do(t, http.MethodPatch, "/api/v1/seller/orders/"+uuid.NewString()+"/status", `{"status":"confirmed"}`, "customer-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestSellerCakes_WithoutBakery(t *testing.T) {
	s := newTestServer(t)
	seller := newProfile(entity.RoleSeller)
	s.signedIn("seller-token", seller)
	s.catalog.EXPECT().GetOwnBakery(mock.Anything, seller.ID).Return(nil, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/seller/bakery/cakes", "", "seller-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BAKERY_NOT_FOUND", env.Error.Code)
}

func TestSellerGetBakery_NoneYet(t *testing.T) {
	s := newTestServer(t)
	seller := newProfile(entity.RoleSeller)
	s.signedIn("seller-token", seller)
	s.catalog.EXPECT().GetOwnBakery(mock.Anything, seller.ID).Return(nil, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/seller/bakery", "", "seller-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(env.Data))
}

func TestSellerCreateCake_DefaultsToAvailable(t *testing.T) {
	s := newTestServer(t)
	seller := newProfile(entity.RoleSeller)
	s.signedIn("seller-token", seller)
	bakery := &entity.Bakery{ID: uuid.New(), OwnerID: seller.ID, Name: "Crumbs"}
	s.catalog.EXPECT().GetOwnBakery(mock.Anything, seller.ID).Return(bakery, nil)

	s.catalog.EXPECT().
		CreateCake(mock.Anything, seller.ID, bakery.ID, mock.MatchedBy(func(in *usecase.CakeInput) bool {
			return in.Available && in.Name == "Opera" && in.Price.Equal(decimal.RequireFromString("12.50")) && in.Allergens == "nuts, dairy"
		})).
		Return(&entity.Cake{ID: uuid.New(), BakeryID: bakery.ID, Name: "Opera", Available: true, Allergens: []string{"nuts", "dairy"}}, nil)

	body := `{"name":"Opera","price":"12.50","allergens":"nuts, dairy","preparation_hours":4}`
	rec, env := s.do(t, http.MethodPost, "/api/v1/seller/bakery/cakes", body, "seller-token")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got handler.CakeResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, []string{"nuts", "dairy"}, got.Allergens)
}

func TestSellerDeleteCake_InUse(t *testing.T) {
	s := newTestServer(t)
	seller := newProfile(entity.RoleSeller)
	s.signedIn("seller-token", seller)
	cakeID := uuid.New()
	s.catalog.EXPECT().DeleteCake(mock.Anything, seller.ID, cakeID).Return(domainerrors.ErrCakeInUse)

	rec, env := s.do(t, http.MethodDelete, "/api/v1/seller/cakes/"+cakeID.String(), "", "seller-token")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CAKE_IN_USE", env.Error.Code)
}

func TestSellerSetAvailability_RequiresFlag(t *testing.T) {
	s := newTestServer(t)
	s.signedIn("seller-token", newProfile(entity.RoleSeller))

	rec, env := s.do(t, http.MethodPut, "/api/v1/seller/cakes/"+uuid.NewString()+"/availability", `{}`, "seller-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestSignUp(t *testing.T) {
	s := newTestServer(t)
	profile := newProfile(entity.RoleSeller)

	s.account.EXPECT().SignUp(mock.Anything, usecase.SignUpInput{
		Email:       "baker@example.com",
		Password:    "correct horse",
		DisplayName: "Baker",
		Role:        entity.RoleSeller,
	}).Return(&usecase.AuthOutput{AccessToken: "jwt", Profile: profile}, nil)

	body := `{"email":"baker@example.com","password":"correct horse","display_name":"Baker","role":"seller"}`
	rec, env := s.do(t, http.MethodPost, "/auth/signup", body, "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "jwt", got.AccessToken)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.Equal(t, entity.RoleSeller, got.Profile.Role)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	s.account.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec, env := s.do(t, http.MethodPost, "/auth/login", `{"email":"a@b.co","password":"nope"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestSignOut(t *testing.T) {
	s := newTestServer(t)
	profile := newProfile(entity.RoleCustomer)
	s.signedIn("token", profile)
	s.account.EXPECT().SignOut(mock.Anything, profile.PrincipalID).Return(nil)

	rec, _ := s.do(t, http.MethodPost, "/auth/logout", "", "token")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	s := newTestServer(t)
	profile := newProfile(entity.RoleCustomer)
	s.signedIn("token", profile)

	s.identity.EXPECT().
		UpdateProfile(mock.Anything, profile.PrincipalID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.DisplayName == nil && in.Phone != nil && *in.Phone == "555-0100" && in.Address == nil
		})).
		Return(profile, nil)

	rec, _ := s.do(t, http.MethodPatch, "/api/v1/profile", `{"phone":"555-0100"}`, "token")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestDatabaseFailure_HidesDetails(t *testing.T) {
	s := newTestServer(t)
	s.catalog.EXPECT().ListAvailableCakes(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("dial tcp: refused"), "failed to list available cakes"))

	rec, env := s.do(t, http.MethodGet, "/api/v1/cakes", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "UNAVAILABLE", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "refused")
}
