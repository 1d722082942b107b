package account_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/amirasaad/ledger/pkg/dto"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type envelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type AccountTestSuite struct {
	suite.Suite
	app *fiber.App
	svc *accountsvc.Service
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) SetupTest() {
	s.app, s.svc = testutils.NewTestApp(s.T())
}

func (s *AccountTestSuite) createAccount(body string) dto.AccountRead {
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/account", body)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var out envelope[dto.AccountRead]
	testutils.DecodeJSON(s.T(), resp, &out)
	return out.Data
}

func (s *AccountTestSuite) problem(resp *http.Response, wantStatus int) common.ProblemDetails {
	s.Require().Equal(wantStatus, resp.StatusCode)
	s.Assert().Equal(common.MIMEProblemJSON, resp.Header.Get(fiber.HeaderContentType))
	var pd common.ProblemDetails
	testutils.DecodeJSON(s.T(), resp, &pd)
	return pd
}

func (s *AccountTestSuite) TestCreateAccount() {
	s.Run("default balance", func() {
		acct := s.createAccount(fmt.Sprintf(`{"email":%q}`, testutils.RandomEmail()))
		s.Assert().Positive(acct.ID)
		s.Assert().Equal("0.00", acct.Balance)
	})

	s.Run("initial balance", func() {
		acct := s.createAccount(fmt.Sprintf(`{"email":%q,"initial_balance":"12.30"}`, testutils.RandomEmail()))
		s.Assert().Equal("12.30", acct.Balance)
	})

	s.Run("duplicate email", func() {
		email := testutils.RandomEmail()
		s.createAccount(fmt.Sprintf(`{"email":%q}`, email))

		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/account", fmt.Sprintf(`{"email":%q}`, email))
		pd := s.problem(resp, fiber.StatusUnprocessableEntity)
		s.Assert().Equal(map[string]string{"email": common.ReasonNotUnique}, pd.Errors)
	})
}

func (s *AccountTestSuite) TestCreateAccount_Validation() {
	tests := []struct {
		name  string
		body  string
		field string
		want  string
	}{
		{"missing email", `{}`, "email", common.ReasonRequired},
		{"bad email", `{"email":"not-an-email"}`, "email", common.ReasonInvalidEmail},
		{"negative balance", `{"email":"a@b.io","initial_balance":"-1.00"}`, "initial_balance", common.ReasonMustNotBeNeg},
		{"three decimals", `{"email":"a@b.io","initial_balance":"1.234"}`, "initial_balance", common.ReasonInvalidPrecision},
		{"too big", `{"email":"a@b.io","initial_balance":"1000000.00"}`, "initial_balance", common.ReasonTooBig},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/account", tt.body)
			pd := s.problem(resp, fiber.StatusUnprocessableEntity)
			s.Assert().Equal(tt.want, pd.Errors[tt.field], "errors: %v", pd.Errors)
		})
	}

	s.Run("malformed json", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/account", `{"email":`)
		pd := s.problem(resp, fiber.StatusUnprocessableEntity)
		s.Assert().Contains(pd.Errors, common.FieldBody)
	})
}

func (s *AccountTestSuite) TestGetAccount() {
	acct := s.createAccount(fmt.Sprintf(`{"email":%q,"initial_balance":"5.00"}`, testutils.RandomEmail()))

	s.Run("found", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, fmt.Sprintf("/account/%d", acct.ID), "")
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		var out envelope[dto.AccountRead]
		testutils.DecodeJSON(s.T(), resp, &out)
		s.Assert().Equal(acct.ID, out.Data.ID)
		s.Assert().Equal("5.00", out.Data.Balance)
		s.Assert().Equal(acct.Email, out.Data.Email)
	})

	s.Run("not found", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/account/999999", "")
		pd := s.problem(resp, fiber.StatusNotFound)
		s.Assert().Equal(map[string]string{"id": common.ReasonNotFound}, pd.Errors)
	})

	s.Run("not an int", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/account/abc", "")
		pd := s.problem(resp, fiber.StatusUnprocessableEntity)
		s.Assert().Equal(common.ReasonMustBeInt, pd.Errors["id"])
	})

	s.Run("zero", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/account/0", "")
		pd := s.problem(resp, fiber.StatusUnprocessableEntity)
		s.Assert().Equal(common.ReasonMustBeGreater0, pd.Errors["id"])
	})
}

func (s *AccountTestSuite) TestPayment() {
	acct := s.createAccount(fmt.Sprintf(`{"email":%q}`, testutils.RandomEmail()))
	path := fmt.Sprintf("/account/%d/payment", acct.ID)

	s.Run("credits the account", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, path, `{"amount":"10.00"}`)
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		var out envelope[dto.AccountRead]
		testutils.DecodeJSON(s.T(), resp, &out)
		s.Assert().Equal("10.00", out.Data.Balance)
	})

	s.Run("numeric amount", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, path, `{"amount":0.5}`)
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		var out envelope[dto.AccountRead]
		testutils.DecodeJSON(s.T(), resp, &out)
		s.Assert().Equal("10.50", out.Data.Balance)
	})

	s.Run("records a deposit entry", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, fmt.Sprintf("/account/%d/transactions", acct.ID), "")
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		var out envelope[[]dto.TransactionRead]
		testutils.DecodeJSON(s.T(), resp, &out)
		s.Require().Len(out.Data, 2)
		s.Assert().Nil(out.Data[0].SourceAccountID)
		s.Assert().Equal(acct.ID, out.Data[0].TargetAccountID)
		s.Assert().Equal("0.50", out.Data[0].Amount)
	})

	s.Run("unknown account", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/account/999999/payment", `{"amount":"1.00"}`)
		pd := s.problem(resp, fiber.StatusNotFound)
		s.Assert().Equal(map[string]string{"account_id": common.ReasonNotFound}, pd.Errors)
	})

	s.Run("non-integer account id", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/account/x1/payment", `{"amount":"1.00"}`)
		pd := s.problem(resp, fiber.StatusUnprocessableEntity)
		s.Assert().Equal(common.ReasonMustBeInt, pd.Errors["account_id"])
	})

	s.Run("invalid amounts", func() {
		for body, want := range map[string]string{
			`{}`:                  common.ReasonRequired,
			`{"amount":"0"}`:      common.ReasonMustBeGreater0,
			`{"amount":"-3.00"}`:  common.ReasonMustBeGreater0,
			`{"amount":"0.001"}`:  common.ReasonInvalidPrecision,
			`{"amount":"abc"}`:    common.ReasonInvalidDecimal,
			`{"amount":"1e7"}`:    common.ReasonTooBig,
			`{"amount":"999999"}`: "",
		} {
			resp := testutils.MakeRequest(s.app, fiber.MethodPost, path, body)
			if want == "" {
				// Valid on its own but pushes the balance past the maximum.
				pd := s.problem(resp, fiber.StatusUnprocessableEntity)
				s.Assert().Equal(common.ReasonTooBig, pd.Errors["amount"], body)
				continue
			}
			pd := s.problem(resp, fiber.StatusUnprocessableEntity)
			reason := pd.Errors["amount"]
			if reason == "" {
				reason = pd.Errors[common.FieldBody]
			}
			s.Assert().Equal(want, reason, body)
		}
	})
}

func (s *AccountTestSuite) TestGetTransactions_UnknownAccount() {
	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/account/424242/transactions", "")
	pd := s.problem(resp, fiber.StatusNotFound)
	s.Assert().Equal(common.ReasonNotFound, pd.Errors["id"])
}
