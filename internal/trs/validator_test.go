package trs_test

import (
	"context"
	"testing"
	"time"

	"github.com/CZERTAINLY/gh-trs/internal/trs"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestValidator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	validator, err := trs.NewValidator()
	require.NoError(t, err)

	gen := trs.Generator{Now: func() time.Time { return t0 }}
	cfg := newConfig()

	info, err := gen.ServiceInfo(nil, cfg, "octo-org", "workflows")
	require.NoError(t, err)
	require.NoError(t, validator.Validate(ctx, trs.KindServiceInfo, info))

	tool, err := gen.Tool(nil, cfg, "octo-org", "workflows")
	require.NoError(t, err)
	require.NoError(t, validator.Validate(ctx, trs.KindTool, tool))
	require.NoError(t, validator.Validate(ctx, trs.KindTools, []trs.Tool{tool}))
	require.NoError(t, validator.Validate(ctx, trs.KindToolVersion, tool.Versions[0]))
	require.NoError(t, validator.Validate(ctx, trs.KindToolVersions, tool.Versions))
	require.NoError(t, validator.Validate(ctx, trs.KindToolFiles, trs.ToolFiles(cfg)))
	require.NoError(t, validator.Validate(ctx, trs.KindFileWrappers, trs.TestWrappers(cfg)))

	wrapper, err := trs.DescriptorWrapper(cfg)
	require.NoError(t, err)
	require.NoError(t, validator.Validate(ctx, trs.KindFileWrapper, wrapper))
}

func TestValidator_Fail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	validator, err := trs.NewValidator(trs.KindServiceInfo, trs.KindToolVersion)
	require.NoError(t, err)

	var testCases = []struct {
		scenario string
		kind     trs.Kind
		given    string
		contains string
	}{
		{
			scenario: "missing organization",
			kind:     trs.KindServiceInfo,
			given:    `{"id": "a", "name": "b", "type": {"group": "g", "artifact": "a", "version": "v"}, "version": "1"}`,
			contains: "organization",
		},
		{
			scenario: "null description",
			kind:     trs.KindServiceInfo,
			given:    `{"id": "a", "name": "b", "type": {"group": "g", "artifact": "a", "version": "v"}, "organization": {"name": "o", "url": "https://example.com"}, "description": null, "version": "1"}`,
			contains: "/description",
		},
		{
			scenario: "lowercase descriptor type",
			kind:     trs.KindToolVersion,
			given:    `{"url": "https://example.com", "id": "c0a8d8a6-2f4e-4a53-9b4f-6a7e2b8d9c10", "descriptorType": ["cwl"]}`,
			contains: "/descriptorType/0",
		},
		{
			scenario: "snake case field",
			kind:     trs.KindToolVersion,
			given:    `{"url": "https://example.com", "id": "c0a8d8a6-2f4e-4a53-9b4f-6a7e2b8d9c10", "descriptor_type": ["CWL"]}`,
			contains: "descriptor_type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.scenario, func(t *testing.T) {
			t.Parallel()
			err := validator.ValidateBytes(ctx, tc.kind, []byte(tc.given))
			require.ErrorIs(t, err, trs.ErrInvalidDocument)
			require.ErrorContains(t, err, tc.contains)
		})
	}

	err = validator.ValidateBytes(ctx, trs.KindTool, []byte(`{}`))
	require.Error(t, err)
	require.ErrorContains(t, err, "unsupported document kind")

	err = validator.ValidateBytes(ctx, trs.KindServiceInfo, []byte(`{`))
	require.Error(t, err)
	require.NotErrorIs(t, err, trs.ErrInvalidDocument)
}

// generation passes share nothing, so they can run concurrently
func TestGenerator_Concurrent(t *testing.T) {
	t.Parallel()

	gen := trs.Generator{}
	validator, err := trs.NewValidator()
	require.NoError(t, err)

	g, ctx := errgroup.WithContext(context.Background())
	for range 16 {
		g.Go(func() error {
			cfg := newConfig()
			info, err := gen.ServiceInfo(nil, cfg, "octo-org", "workflows")
			if err != nil {
				return err
			}
			info, err = gen.ServiceInfo(&info, cfg, "octo-org", "workflows")
			if err != nil {
				return err
			}
			if err := validator.Validate(ctx, trs.KindServiceInfo, info); err != nil {
				return err
			}
			tool, err := gen.Tool(nil, cfg, "octo-org", "workflows")
			if err != nil {
				return err
			}
			return validator.Validate(ctx, trs.KindTool, tool)
		})
	}
	require.NoError(t, g.Wait())
}
