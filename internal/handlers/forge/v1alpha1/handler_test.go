package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	forgev1alpha1 "github.com/KirkDiggler/itemforge/api/forge/v1alpha1"
	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/handlers/forge/v1alpha1"
	"github.com/KirkDiggler/itemforge/internal/itembuilder"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
	forgemock "github.com/KirkDiggler/itemforge/internal/orchestrators/forge/mock"
	"github.com/KirkDiggler/itemforge/internal/testutils"
)

type ForgeHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockForge *forgemock.MockService
	handler   *v1alpha1.Handler
	ctx       context.Context
}

func TestForgeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ForgeHandlerTestSuite))
}

func (s *ForgeHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockForge = forgemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ForgeService: s.mockForge,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *ForgeHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ForgeHandlerTestSuite) builtDiamonds(amount int) *forge.BuiltItem {
	stack := itembuilder.NewWithAmount(item.Diamond{}, amount).Build()
	return &forge.BuiltItem{
		TemplateID: "gems",
		Stack:      stack,
		Summary:    forge.Summarize(stack),
	}
}

func (s *ForgeHandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ForgeHandlerTestSuite) TestCreateTemplate() {
	tmpl := testutils.CreateTestTemplate("sword")

	s.mockForge.EXPECT().
		CreateTemplate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *forge.CreateTemplateInput) (*forge.CreateTemplateOutput, error) {
			s.Equal("DIAMOND_SWORD", in.Template.Material)
			s.Equal(map[string]int{"sharpness": 4}, in.Template.Enchantments)
			return &forge.CreateTemplateOutput{Template: tmpl}, nil
		})

	resp, err := s.handler.CreateTemplate(s.ctx, &forgev1alpha1.CreateTemplateRequest{
		Template: &forgev1alpha1.Template{
			Name:         "Frostbite",
			Material:     "DIAMOND_SWORD",
			Enchantments: map[string]int32{"sharpness": 4},
		},
	})
	s.Require().NoError(err)
	s.Equal("sword", resp.Template.Id)
	s.Equal(testutils.TestTime.Unix(), resp.Template.CreatedAt)
	s.Equal(int32(2), resp.Template.Enchantments["unbreaking"])
}

func (s *ForgeHandlerTestSuite) TestRequestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{name: "create without template", call: func() error {
			_, err := s.handler.CreateTemplate(s.ctx, &forgev1alpha1.CreateTemplateRequest{})
			return err
		}},
		{name: "get without id", call: func() error {
			_, err := s.handler.GetTemplate(s.ctx, &forgev1alpha1.GetTemplateRequest{})
			return err
		}},
		{name: "update without id", call: func() error {
			_, err := s.handler.UpdateTemplate(s.ctx, &forgev1alpha1.UpdateTemplateRequest{Template: &forgev1alpha1.Template{}})
			return err
		}},
		{name: "delete without id", call: func() error {
			_, err := s.handler.DeleteTemplate(s.ctx, &forgev1alpha1.DeleteTemplateRequest{})
			return err
		}},
		{name: "build without id", call: func() error {
			_, err := s.handler.BuildItem(s.ctx, &forgev1alpha1.BuildItemRequest{})
			return err
		}},
		{name: "build inline without template", call: func() error {
			_, err := s.handler.BuildTemplate(s.ctx, &forgev1alpha1.BuildTemplateRequest{})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *ForgeHandlerTestSuite) TestGetTemplateNotFound() {
	s.mockForge.EXPECT().
		GetTemplate(s.ctx, &forge.GetTemplateInput{TemplateID: "missing"}).
		Return(nil, errors.NotFoundf("template missing not found"))

	_, err := s.handler.GetTemplate(s.ctx, &forgev1alpha1.GetTemplateRequest{TemplateId: "missing"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *ForgeHandlerTestSuite) TestListTemplates() {
	s.mockForge.EXPECT().
		ListTemplates(s.ctx, &forge.ListTemplatesInput{PageSize: 1}).
		Return(&forge.ListTemplatesOutput{
			Templates:     []*itemdef.Template{testutils.CreateTestTemplate("a")},
			NextPageToken: "a",
			TotalSize:     2,
		}, nil)

	resp, err := s.handler.ListTemplates(s.ctx, &forgev1alpha1.ListTemplatesRequest{PageSize: 1})
	s.Require().NoError(err)
	s.Len(resp.Templates, 1)
	s.Equal("a", resp.NextPageToken)
	s.Equal(int32(2), resp.TotalSize)
}

func (s *ForgeHandlerTestSuite) TestDeleteTemplate() {
	s.mockForge.EXPECT().
		DeleteTemplate(s.ctx, &forge.DeleteTemplateInput{TemplateID: "a"}).
		Return(&forge.DeleteTemplateOutput{}, nil)

	_, err := s.handler.DeleteTemplate(s.ctx, &forgev1alpha1.DeleteTemplateRequest{TemplateId: "a"})
	s.NoError(err)
}

func (s *ForgeHandlerTestSuite) TestBuildItem() {
	s.mockForge.EXPECT().
		BuildItem(s.ctx, &forge.BuildItemInput{TemplateID: "gems", Amount: 7}).
		Return(&forge.BuildItemOutput{Item: s.builtDiamonds(7)}, nil)

	resp, err := s.handler.BuildItem(s.ctx, &forgev1alpha1.BuildItemRequest{TemplateId: "gems", Amount: 7})
	s.Require().NoError(err)
	s.Equal("DIAMOND", resp.Item.Material)
	s.Equal(int32(7), resp.Item.Amount)
	s.Contains(resp.Tooltip, "Diamond x7")
}

// TestOverTheWire runs the handler behind a real gRPC server so the JSON
// codec, service descriptor and error details are exercised end to end
func (s *ForgeHandlerTestSuite) TestOverTheWire() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	forgev1alpha1.RegisterForgeServiceServer(srv, s.handler)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	client := forgev1alpha1.NewForgeServiceClient(conn)

	s.mockForge.EXPECT().
		BuildTemplate(gomock.Any(), gomock.Any()).
		Return(&forge.BuildTemplateOutput{Item: s.builtDiamonds(3)}, nil)

	resp, err := client.BuildTemplate(s.ctx, &forgev1alpha1.BuildTemplateRequest{
		Template: &forgev1alpha1.Template{Material: "DIAMOND", Amount: 3},
	})
	s.Require().NoError(err)
	s.Equal(int32(3), resp.Item.Amount)

	s.mockForge.EXPECT().
		CreateTemplate(gomock.Any(), gomock.Any()).
		Return(nil, errors.NewValidationBuilder().Field("material", "is required").Build())

	_, err = client.CreateTemplate(s.ctx, &forgev1alpha1.CreateTemplateRequest{
		Template: &forgev1alpha1.Template{Name: "nameless"},
	})
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())

	var violations []*errdetails.BadRequest_FieldViolation
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			violations = append(violations, br.GetFieldViolations()...)
		}
	}
	s.Require().Len(violations, 1)
	s.Equal("material", violations[0].GetField())

	restored := errors.FromGRPCError(err)
	s.True(errors.IsInvalidArgument(restored))

	_, err = client.UpdateTemplate(s.ctx, &forgev1alpha1.UpdateTemplateRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
