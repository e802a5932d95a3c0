package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texlink/loomtrade/internal/domain"
)

// calls records the order of persist and mail operations so tests can
// assert that persistence always precedes notification.
type calls struct {
	order []string
}

type stubBuyRepo struct {
	c   *calls
	err error
}

func (r *stubBuyRepo) Create(_ context.Context, _ *domain.BuyInquiry) error {
	r.c.order = append(r.c.order, "persist")
	return r.err
}

type stubSellRepo struct {
	c   *calls
	err error
}

func (r *stubSellRepo) Create(_ context.Context, _ *domain.SellListing) error {
	r.c.order = append(r.c.order, "persist")
	return r.err
}

type stubContactRepo struct {
	c   *calls
	err error
}

func (r *stubContactRepo) Create(_ context.Context, _ *domain.ContactMessage) error {
	r.c.order = append(r.c.order, "persist")
	return r.err
}

type stubAppRepo struct {
	c   *calls
	err error
}

func (r *stubAppRepo) Create(_ context.Context, _ *domain.JobApplication) error {
	r.c.order = append(r.c.order, "persist")
	return r.err
}

type stubSubscriberRepo struct {
	c     *calls
	err   error
	count int64
}

func (r *stubSubscriberRepo) Create(_ context.Context, s *domain.Subscriber) error {
	r.c.order = append(r.c.order, "persist")
	return r.err
}

func (r *stubSubscriberRepo) Count(_ context.Context, _ domain.SubscriberList) (int64, error) {
	return r.count, nil
}

type stubMailer struct {
	c    *calls
	sent []domain.Message
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg domain.Message) error {
	m.c.order = append(m.c.order, "mail:"+msg.Template)
	m.sent = append(m.sent, msg)
	return m.err
}

func TestSubmitBuyPersistsThenNotifies(t *testing.T) {
	c := &calls{}
	mail := &stubMailer{c: c}
	uc := &InquiryUC{Buys: &stubBuyRepo{c: c}, Mail: mail, Operator: "ops@texlink.example"}

	notified, err := uc.SubmitBuy(context.Background(), &domain.BuyInquiry{
		Name: "Jane", Phone: "123", Email: "jane@x.com",
	})
	require.NoError(t, err)
	assert.True(t, notified)
	require.Len(t, c.order, 3)
	assert.Equal(t, "persist", c.order[0])
	assert.Equal(t, "mail:buy_operator.html", c.order[1])
	assert.Equal(t, "mail:buy_confirmation.html", c.order[2])
	assert.Equal(t, []string{"ops@texlink.example"}, mail.sent[0].To)
	assert.Equal(t, []string{"jane@x.com"}, mail.sent[1].To)
}

func TestSubmitBuyPersistFailureSendsNothing(t *testing.T) {
	c := &calls{}
	mail := &stubMailer{c: c}
	uc := &InquiryUC{Buys: &stubBuyRepo{c: c, err: errors.New("db down")}, Mail: mail, Operator: "ops@texlink.example"}

	_, err := uc.SubmitBuy(context.Background(), &domain.BuyInquiry{Name: "J", Phone: "1", Email: "j@x.com"})
	require.Error(t, err)
	assert.Empty(t, mail.sent)
}

func TestSubmitContactNotifyFailureDoesNotFailRequest(t *testing.T) {
	c := &calls{}
	mail := &stubMailer{c: c, err: errors.New("relay down")}
	uc := &InquiryUC{Contacts: &stubContactRepo{c: c}, Mail: mail, Operator: "ops@texlink.example"}

	notified, err := uc.SubmitContact(context.Background(), &domain.ContactMessage{
		Name: "Jane", Email: "jane@x.com", Message: "long enough text",
	})
	require.NoError(t, err)
	assert.False(t, notified)
	assert.Equal(t, "persist", c.order[0])
}

func TestSubmitSellNotifiesBothParties(t *testing.T) {
	c := &calls{}
	mail := &stubMailer{c: c}
	uc := &InquiryUC{Sells: &stubSellRepo{c: c}, Mail: mail, Operator: "ops@texlink.example"}

	notified, err := uc.SubmitSell(context.Background(), &domain.SellListing{
		Name: "Jo", Email: "jo@x.com", Phone: "5551234567", Brand: "Picanol", Model: "OmniPlus",
	})
	require.NoError(t, err)
	assert.True(t, notified)
	require.Len(t, mail.sent, 2)
}

func TestApplicationSubmitAttachesResume(t *testing.T) {
	c := &calls{}
	mail := &stubMailer{c: c}
	uc := &ApplicationUC{Applications: &stubAppRepo{c: c}, Mail: mail, Operator: "ops@texlink.example"}

	resume := &domain.Attachment{Filename: "cv.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}
	notified, err := uc.Submit(context.Background(), &domain.JobApplication{
		Name: "Jo", Email: "jo@x.com", Phone: "5551234567",
		JobID: "sales-engineer", JobTitle: "Sales Engineer",
	}, resume)
	require.NoError(t, err)
	assert.True(t, notified)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, resume, mail.sent[0].Attachment)
	assert.Equal(t, []string{"ops@texlink.example"}, mail.sent[0].To)
	assert.Equal(t, "Job application: Sales Engineer - Jo", mail.sent[0].Subject)
}

func TestSubscribeDuplicateSendsNothing(t *testing.T) {
	c := &calls{}
	mail := &stubMailer{c: c}
	uc := &SubscriberUC{Subscribers: &stubSubscriberRepo{c: c, err: domain.ErrDuplicate}, Mail: mail, Operator: "ops@texlink.example"}

	_, _, err := uc.Subscribe(context.Background(), domain.ListWaitlist, "dup@x.com", "")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, mail.sent)
}

func TestSubscribePicksListTemplate(t *testing.T) {
	c := &calls{}
	mail := &stubMailer{c: c}
	uc := &SubscriberUC{Subscribers: &stubSubscriberRepo{c: c}, Mail: mail, Operator: "ops@texlink.example"}

	_, notified, err := uc.Subscribe(context.Background(), domain.ListNewsletter, "new@x.com", "blog")
	require.NoError(t, err)
	assert.True(t, notified)
	require.Len(t, mail.sent, 2)
	assert.Equal(t, "subscribe_operator.html", mail.sent[0].Template)
	assert.Equal(t, "newsletter_welcome.html", mail.sent[1].Template)

	c.order = nil
	mail.sent = nil
	_, _, err = uc.Subscribe(context.Background(), domain.ListWaitlist, "w@x.com", "")
	require.NoError(t, err)
	assert.Equal(t, "waitlist_welcome.html", mail.sent[1].Template)
}
