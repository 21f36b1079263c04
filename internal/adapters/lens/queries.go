package lens

const accountFields = `
fragment AccountFields on Account {
  address
  username { id localName namespace }
  metadata { name bio picture coverPicture }
}`

const postFields = `
fragment PostFields on Post {
  id
  timestamp
  author { ...AccountFields }
  commentOn { id author { username { localName } } }
  metadata {
    __typename
    ... on TextOnlyMetadata { content }
    ... on ArticleMetadata { content }
    ... on ImageMetadata { content }
    ... on VideoMetadata { content }
    ... on AudioMetadata { content }
    ... on LinkMetadata { content }
    ... on EmbedMetadata { content }
    ... on StoryMetadata { content }
    ... on EventMetadata { content }
    ... on LivestreamMetadata { content }
    ... on CheckingInMetadata { content }
    ... on MintMetadata { content }
    ... on SpaceMetadata { content }
    ... on ThreeDMetadata { content }
    ... on TransactionMetadata { content }
  }
}` + accountFields

const challengeMutation = `
mutation Challenge($request: ChallengeRequest!) {
  challenge(request: $request) { id text }
}`

const authenticateMutation = `
mutation Authenticate($request: SignedAuthChallenge!) {
  authenticate(request: $request) {
    __typename
    ... on AuthenticationTokens { accessToken refreshToken idToken }
    ... on WrongSignerError { reason }
    ... on ExpiredChallengeError { reason }
    ... on ForbiddenError { reason }
  }
}`

const accountQuery = `
query Account($request: AccountRequest!) {
  account(request: $request) { ...AccountFields }
}` + accountFields

const postMutation = `
mutation CreatePost($request: CreatePostRequest!) {
  post(request: $request) {
    __typename
    ... on PostResponse { hash }
    ... on SponsoredTransactionRequest {
      reason
      raw {
        type to from nonce gasLimit maxPriorityFeePerGas maxFeePerGas data value chainId
        customData { gasPerPubdata factoryDeps customSignature paymasterParams { paymaster paymasterInput } }
      }
    }
    ... on SelfFundedTransactionRequest {
      reason
      raw { type to from nonce gasLimit maxPriorityFeePerGas maxFeePerGas data value chainId }
    }
    ... on TransactionWillFail { reason }
  }
}`

const postQuery = `
query Post($request: PostRequest!) {
  post(request: $request) {
    __typename
    ... on Post { ...PostFields }
  }
}` + postFields

const notificationsQuery = `
query Notifications($request: NotificationRequest!) {
  notifications(request: $request) {
    items {
      __typename
      ... on MentionNotification { post { ...PostFields } }
      ... on CommentNotification { comment { ...PostFields } }
    }
    pageInfo { next }
  }
}` + postFields

const timelineQuery = `
query Timeline($request: TimelineRequest!) {
  timeline(request: $request) {
    items { id primary { ...PostFields } }
    pageInfo { next }
  }
}` + postFields

const postsQuery = `
query Posts($request: PostsRequest!) {
  posts(request: $request) {
    items {
      __typename
      ... on Post { ...PostFields }
    }
    pageInfo { next }
  }
}` + postFields
