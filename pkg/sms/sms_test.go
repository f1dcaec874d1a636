package sms

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeTwilio struct {
	params *api.CreateMessageParams
	err    error
}

func (f *fakeTwilio) CreateMessage(params *api.CreateMessageParams) (*api.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &api.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioProvider_UsesDefaultFrom(t *testing.T) {
	fake := &fakeTwilio{}
	p := &TwilioProvider{messages: fake, fromNumber: "+15550001111"}

	resp, err := p.SendSMS(context.Background(), &SMSRequest{To: "+233244123456", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "SM123", resp.MessageID)
	assert.Equal(t, "+15550001111", *fake.params.From)
	assert.Equal(t, "hi", *fake.params.Body)
}

func TestTwilioProvider_Failure(t *testing.T) {
	p := &TwilioProvider{messages: &fakeTwilio{err: errors.New("401")}}

	resp, err := p.SendSMS(context.Background(), &SMSRequest{To: "+233244123456", Message: "hi"})
	assert.Error(t, err)
	assert.Equal(t, "failed", resp.Status)
}

type fakeSNS struct {
	input *sns.PublishInput
}

func (f *fakeSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	return &sns.PublishOutput{MessageId: aws.String("mid-1")}, nil
}

func TestAWSSNSProvider_SendsMessageBody(t *testing.T) {
	fake := &fakeSNS{}
	p := &AWSSNSProvider{client: fake, senderID: "CampusMkt"}

	resp, err := p.SendSMS(context.Background(), &SMSRequest{To: "+233244123456", Message: "New delivery"})
	require.NoError(t, err)
	assert.Equal(t, "mid-1", resp.MessageID)
	assert.Equal(t, "New delivery", aws.ToString(fake.input.Message))
	assert.Equal(t, "CampusMkt", aws.ToString(fake.input.MessageAttributes["AWS.SNS.SMS.SenderID"].StringValue))
	assert.Equal(t, "Transactional", aws.ToString(fake.input.MessageAttributes["AWS.SNS.SMS.SMSType"].StringValue))
}

func TestNoopProvider(t *testing.T) {
	resp, err := NoopProvider{}.SendSMS(context.Background(), &SMSRequest{})
	require.NoError(t, err)
	assert.Equal(t, "skipped", resp.Status)
}
